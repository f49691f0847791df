package services

import (
	"testing"
	"time"

	"news-portal/models"
	"news-portal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newArticleService(db *gorm.DB, dispatcher *recordingDispatcher) ArticleService {
	return NewArticleService(
		repositories.NewArticleRepository(db),
		repositories.NewPublisherRepository(db),
		dispatcher,
	)
}

func TestCreateArticleJournalistOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	reader := createUser(t, db, "reader", models.RoleReader)

	req := models.CreateArticleRequest{
		Title:       "Breaking",
		Content:     "something happened",
		PublisherID: publisher.ID,
	}

	_, err := svc.Create(req, reader.ID, models.RoleReader)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)

	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	article, err := svc.Create(req, journalist.ID, models.RoleJournalist)
	require.NoError(t, err)
	assert.False(t, article.Approved, "new articles start pending")
	assert.Equal(t, journalist.ID, article.AuthorID)
}

func TestApproveIsEditorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	article := createArticle(t, db, "Pending piece", journalist, publisher, false)

	for _, role := range []models.Role{models.RoleReader, models.RoleJournalist, models.RolePublisher} {
		_, err := svc.Approve(article.ID, role)
		assert.ErrorIs(t, err, models.ErrPermissionDenied, "role %s should be denied", role)
	}
}

func TestApproveIdempotentSingleDispatch(t *testing.T) {
	db := newTestDB(t)
	dispatcher := &recordingDispatcher{}
	svc := newArticleService(db, dispatcher)

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	article := createArticle(t, db, "Pending piece", journalist, publisher, false)

	approved, err := svc.Approve(article.ID, models.RoleEditor)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.Equal(t, 1, dispatcher.dispatchCount(), "first approval dispatches one batch")

	// Second approval is a no-op and must not dispatch again.
	approvedAgain, err := svc.Approve(article.ID, models.RoleEditor)
	require.NoError(t, err)
	assert.True(t, approvedAgain.Approved)
	assert.Equal(t, 1, dispatcher.dispatchCount(), "re-approval dispatches nothing")
}

func TestDeleteRules(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	editor := createUser(t, db, "editor", models.RoleEditor)
	reader := createUser(t, db, "reader", models.RoleReader)

	t.Run("editor deletes pending article", func(t *testing.T) {
		article := createArticle(t, db, "Pending", journalist, publisher, false)
		require.NoError(t, svc.Delete(article.ID, editor.ID, models.RoleEditor))
	})

	t.Run("editor cannot delete approved article", func(t *testing.T) {
		article := createArticle(t, db, "Approved", journalist, publisher, true)
		err := svc.Delete(article.ID, editor.ID, models.RoleEditor)
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
	})

	t.Run("author deletes own approved article", func(t *testing.T) {
		article := createArticle(t, db, "Approved by author", journalist, publisher, true)
		require.NoError(t, svc.Delete(article.ID, journalist.ID, models.RoleJournalist))
	})

	t.Run("reader cannot delete", func(t *testing.T) {
		article := createArticle(t, db, "Untouchable", journalist, publisher, false)
		err := svc.Delete(article.ID, reader.ID, models.RoleReader)
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
	})
}

func TestUpdateKeepsAuthorPinned(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	editor := createUser(t, db, "editor", models.RoleEditor)
	article := createArticle(t, db, "Original", journalist, publisher, false)

	req := models.UpdateArticleRequest{
		Title:       "Edited title",
		Content:     "x",
		PublisherID: publisher.ID,
	}

	updated, err := svc.Update(article.ID, req, editor.ID, models.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "x", updated.Content)
	assert.Equal(t, journalist.ID, updated.AuthorID, "editor edits never change authorship")
}

func TestUpdateDeniedForNonAuthorNonEditor(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	other := createUser(t, db, "other", models.RoleJournalist)
	article := createArticle(t, db, "Original", journalist, publisher, false)

	req := models.UpdateArticleRequest{
		Title:       "Hijack",
		Content:     "x",
		PublisherID: publisher.ID,
	}

	_, err := svc.Update(article.ID, req, other.ID, models.RoleJournalist)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
}

func TestSubscribedFeedVisibility(t *testing.T) {
	db := newTestDB(t)
	articleSvc := newArticleService(db, &recordingDispatcher{})
	subscriptionSvc := newSubscriptionService(db)

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	reader := createUser(t, db, "reader", models.RoleReader)

	require.NoError(t, subscriptionSvc.SubscribeJournalist(reader.ID, journalist.ID))

	article := createArticle(t, db, "Scoop", journalist, publisher, false)

	// Pending articles never show up in the subscribed feed.
	feed, err := articleSvc.ListSubscribed(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)

	_, err = articleSvc.Approve(article.ID, models.RoleEditor)
	require.NoError(t, err)

	feed, err = articleSvc.ListSubscribed(reader.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, article.ID, feed[0].ID)
}

func TestSubscribedFeedDeduplicatesUnion(t *testing.T) {
	db := newTestDB(t)
	articleSvc := newArticleService(db, &recordingDispatcher{})
	subscriptionSvc := newSubscriptionService(db)

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	reader := createUser(t, db, "reader", models.RoleReader)

	// Subscribed to both the publisher and the author; the article must
	// still appear only once.
	require.NoError(t, subscriptionSvc.SubscribePublisher(reader.ID, publisher.ID))
	require.NoError(t, subscriptionSvc.SubscribeJournalist(reader.ID, journalist.ID))

	createArticle(t, db, "Scoop", journalist, publisher, true)

	feed, err := articleSvc.ListSubscribed(reader.ID)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestSubscribedFeedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	articleSvc := newArticleService(db, &recordingDispatcher{})
	subscriptionSvc := newSubscriptionService(db)

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)
	reader := createUser(t, db, "reader", models.RoleReader)
	require.NoError(t, subscriptionSvc.SubscribeJournalist(reader.ID, journalist.ID))

	// Insert the newest article first so insertion order and recency
	// disagree; the feed must sort by creation time, not by id.
	now := time.Now()
	newest := &models.Article{
		Title: "Newest", Content: "x",
		AuthorID: journalist.ID, PublisherID: publisher.ID,
		Approved: true, CreatedAt: now,
	}
	require.NoError(t, db.Create(newest).Error)

	older := &models.Article{
		Title: "Older", Content: "x",
		AuthorID: journalist.ID, PublisherID: publisher.ID,
		Approved: true, CreatedAt: now.Add(-time.Hour),
	}
	require.NoError(t, db.Create(older).Error)

	feed, err := articleSvc.ListSubscribed(reader.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "Newest", feed[0].Title)
	assert.Equal(t, "Older", feed[1].Title)
}

func TestListPendingNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)

	now := time.Now()
	newest := &models.Article{
		Title: "Newest pending", Content: "x",
		AuthorID: journalist.ID, PublisherID: publisher.ID,
		CreatedAt: now,
	}
	require.NoError(t, db.Create(newest).Error)

	older := &models.Article{
		Title: "Older pending", Content: "x",
		AuthorID: journalist.ID, PublisherID: publisher.ID,
		CreatedAt: now.Add(-time.Hour),
	}
	require.NoError(t, db.Create(older).Error)

	pending, err := svc.ListPending(models.RoleEditor)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "Newest pending", pending[0].Title)
	assert.Equal(t, "Older pending", pending[1].Title)
}

func TestListPublicOnlyApproved(t *testing.T) {
	db := newTestDB(t)
	svc := newArticleService(db, &recordingDispatcher{})

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)

	createArticle(t, db, "Approved one", journalist, publisher, true)
	createArticle(t, db, "Pending one", journalist, publisher, false)

	articles, total, err := svc.ListPublic(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, articles, 1)
	assert.Equal(t, "Approved one", articles[0].Title)
}
