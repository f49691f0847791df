package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"news-portal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory sqlite database named after the
// test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
	))

	return db
}

// recordingDispatcher captures approval dispatches instead of sending
// anything.
type recordingDispatcher struct {
	mu       sync.Mutex
	articles []*models.Article
}

func (d *recordingDispatcher) ArticleApproved(article *models.Article) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.articles = append(d.articles, article)
}

func (d *recordingDispatcher) Shutdown(ctx context.Context) error {
	return nil
}

func (d *recordingDispatcher) dispatchCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.articles)
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPublisher(t *testing.T, db *gorm.DB, name string, owner *models.User) *models.Publisher {
	t.Helper()

	publisher := &models.Publisher{
		Name:    name,
		OwnerID: owner.ID,
	}
	require.NoError(t, db.Create(publisher).Error)
	return publisher
}

func createArticle(t *testing.T, db *gorm.DB, title string, author *models.User, publisher *models.Publisher, approved bool) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:       title,
		Content:     "content of " + title,
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
		Approved:    approved,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}
