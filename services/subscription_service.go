package services

import (
	"errors"
	"fmt"

	"news-portal/models"
	"news-portal/repositories"

	"gorm.io/gorm"
)

// SubscriptionService manages a reader's subscriptions to publishers and
// journalists. Every operation requires the reader role; subscribe and
// unsubscribe are idempotent.
type SubscriptionService interface {
	SubscribePublisher(userID, publisherID uint) error
	UnsubscribePublisher(userID, publisherID uint) error
	SubscribeJournalist(userID, journalistID uint) error
	UnsubscribeJournalist(userID, journalistID uint) error
	List(userID uint) (*models.SubscriptionsResponse, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	publisherRepo    repositories.PublisherRepository
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository, userRepo repositories.UserRepository, publisherRepo repositories.PublisherRepository) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		publisherRepo:    publisherRepo,
	}
}

func (s *subscriptionService) SubscribePublisher(userID, publisherID uint) error {
	reader, err := s.getReader(userID)
	if err != nil {
		return err
	}
	publisher, err := s.getPublisher(publisherID)
	if err != nil {
		return err
	}
	return s.subscriptionRepo.AddPublisher(reader, publisher)
}

func (s *subscriptionService) UnsubscribePublisher(userID, publisherID uint) error {
	reader, err := s.getReader(userID)
	if err != nil {
		return err
	}
	publisher, err := s.getPublisher(publisherID)
	if err != nil {
		return err
	}
	return s.subscriptionRepo.RemovePublisher(reader, publisher)
}

func (s *subscriptionService) SubscribeJournalist(userID, journalistID uint) error {
	reader, err := s.getReader(userID)
	if err != nil {
		return err
	}
	journalist, err := s.getJournalist(journalistID)
	if err != nil {
		return err
	}
	return s.subscriptionRepo.AddJournalist(reader, journalist)
}

func (s *subscriptionService) UnsubscribeJournalist(userID, journalistID uint) error {
	reader, err := s.getReader(userID)
	if err != nil {
		return err
	}
	journalist, err := s.getJournalist(journalistID)
	if err != nil {
		return err
	}
	return s.subscriptionRepo.RemoveJournalist(reader, journalist)
}

func (s *subscriptionService) List(userID uint) (*models.SubscriptionsResponse, error) {
	if _, err := s.getReader(userID); err != nil {
		return nil, err
	}

	publishers, err := s.subscriptionRepo.GetPublishers(userID)
	if err != nil {
		return nil, err
	}
	journalists, err := s.subscriptionRepo.GetJournalists(userID)
	if err != nil {
		return nil, err
	}

	return &models.SubscriptionsResponse{
		Publishers:  publishers,
		Journalists: journalists,
	}, nil
}

func (s *subscriptionService) getReader(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, userID)
		}
		return nil, err
	}
	if user.Role != models.RoleReader {
		return nil, fmt.Errorf("%w: only readers can manage subscriptions", models.ErrPermissionDenied)
	}
	return user, nil
}

func (s *subscriptionService) getPublisher(publisherID uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher %d", models.ErrNotFound, publisherID)
		}
		return nil, err
	}
	return publisher, nil
}

// getJournalist resolves the follow target constrained to the journalist
// role; a user with any other role is reported as not found.
func (s *subscriptionService) getJournalist(journalistID uint) (*models.User, error) {
	journalist, err := s.userRepo.GetJournalistByID(journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: journalist %d", models.ErrNotFound, journalistID)
		}
		return nil, err
	}
	return journalist, nil
}
