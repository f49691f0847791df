package services

import (
	"testing"

	"news-portal/models"
	"news-portal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB) SubscriptionService {
	return NewSubscriptionService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewPublisherRepository(db),
	)
}

func TestSubscribePublisherRequiresReaderRole(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)

	for _, role := range []models.Role{models.RoleEditor, models.RoleJournalist, models.RolePublisher} {
		user := createUser(t, db, "user_"+string(role), role)
		err := svc.SubscribePublisher(user.ID, publisher.ID)
		assert.ErrorIs(t, err, models.ErrPermissionDenied, "role %s should be denied", role)
	}
}

func TestSubscribePublisherIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	reader := createUser(t, db, "reader", models.RoleReader)
	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)

	require.NoError(t, svc.SubscribePublisher(reader.ID, publisher.ID))
	require.NoError(t, svc.SubscribePublisher(reader.ID, publisher.ID))

	subscriptions, err := svc.List(reader.ID)
	require.NoError(t, err)
	assert.Len(t, subscriptions.Publishers, 1)
}

func TestUnsubscribePublisherMissingIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	reader := createUser(t, db, "reader", models.RoleReader)
	owner := createUser(t, db, "owner", models.RolePublisher)
	publisher := createPublisher(t, db, "Daily Times", owner)

	// Never subscribed; removal is still not an error.
	require.NoError(t, svc.UnsubscribePublisher(reader.ID, publisher.ID))

	subscriptions, err := svc.List(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, subscriptions.Publishers)
}

func TestSubscribeJournalistTargetMustBeJournalist(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	reader := createUser(t, db, "reader", models.RoleReader)
	editor := createUser(t, db, "editor", models.RoleEditor)

	err := svc.SubscribeJournalist(reader.ID, editor.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSubscribeAndUnsubscribeJournalist(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	reader := createUser(t, db, "reader", models.RoleReader)
	journalist := createUser(t, db, "journalist", models.RoleJournalist)

	require.NoError(t, svc.SubscribeJournalist(reader.ID, journalist.ID))
	require.NoError(t, svc.SubscribeJournalist(reader.ID, journalist.ID))

	subscriptions, err := svc.List(reader.ID)
	require.NoError(t, err)
	require.Len(t, subscriptions.Journalists, 1)
	assert.Equal(t, journalist.ID, subscriptions.Journalists[0].ID)

	require.NoError(t, svc.UnsubscribeJournalist(reader.ID, journalist.ID))

	subscriptions, err = svc.List(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, subscriptions.Journalists)
}

func TestListRequiresReaderRole(t *testing.T) {
	db := newTestDB(t)
	svc := newSubscriptionService(db)

	journalist := createUser(t, db, "journalist", models.RoleJournalist)

	_, err := svc.List(journalist.ID)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
}
