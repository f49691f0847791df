package repositories

import (
	"news-portal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository manages the reader's two subscription edges. Add
// and remove are idempotent: adding an existing edge or removing a missing
// one is a no-op, never an error.
type SubscriptionRepository interface {
	AddPublisher(user *models.User, publisher *models.Publisher) error
	RemovePublisher(user *models.User, publisher *models.Publisher) error
	AddJournalist(user *models.User, journalist *models.User) error
	RemoveJournalist(user *models.User, journalist *models.User) error
	GetPublishers(userID uint) ([]models.Publisher, error)
	GetJournalists(userID uint) ([]models.User, error)
	// GetFollowers returns every user that follows the given journalist.
	GetFollowers(journalistID uint) ([]models.User, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) AddPublisher(user *models.User, publisher *models.Publisher) error {
	return r.db.Model(user).Association("SubscribedPublishers").Append(publisher)
}

func (r *subscriptionRepository) RemovePublisher(user *models.User, publisher *models.Publisher) error {
	return r.db.Model(user).Association("SubscribedPublishers").Delete(publisher)
}

func (r *subscriptionRepository) AddJournalist(user *models.User, journalist *models.User) error {
	return r.db.Model(user).Association("SubscribedJournalists").Append(journalist)
}

func (r *subscriptionRepository) RemoveJournalist(user *models.User, journalist *models.User) error {
	return r.db.Model(user).Association("SubscribedJournalists").Delete(journalist)
}

func (r *subscriptionRepository) GetPublishers(userID uint) ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Joins("JOIN user_subscribed_publishers s ON s.publisher_id = publishers.id").
		Where("s.user_id = ?", userID).
		Find(&publishers).Error
	return publishers, err
}

func (r *subscriptionRepository) GetJournalists(userID uint) ([]models.User, error) {
	var journalists []models.User
	err := r.db.Joins("JOIN user_followed_journalists f ON f.journalist_id = users.id").
		Where("f.follower_id = ?", userID).
		Find(&journalists).Error
	return journalists, err
}

func (r *subscriptionRepository) GetFollowers(journalistID uint) ([]models.User, error) {
	var followers []models.User
	err := r.db.Joins("JOIN user_followed_journalists f ON f.follower_id = users.id").
		Where("f.journalist_id = ?", journalistID).
		Find(&followers).Error
	return followers, err
}
