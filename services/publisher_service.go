package services

import (
	"errors"
	"fmt"

	"news-portal/models"
	"news-portal/repositories"

	"gorm.io/gorm"
)

type PublisherService interface {
	// Register creates a publisher owned by the caller. The owner is always
	// the acting user, regardless of request input, and must hold the
	// publisher role.
	Register(req models.CreatePublisherRequest, ownerID uint) (*models.Publisher, error)
	Get(id uint) (*models.Publisher, error)
	List() ([]models.Publisher, error)
}

type publisherService struct {
	publisherRepo repositories.PublisherRepository
	userRepo      repositories.UserRepository
}

func NewPublisherService(publisherRepo repositories.PublisherRepository, userRepo repositories.UserRepository) PublisherService {
	return &publisherService{
		publisherRepo: publisherRepo,
		userRepo:      userRepo,
	}
}

func (s *publisherService) Register(req models.CreatePublisherRequest, ownerID uint) (*models.Publisher, error) {
	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, ownerID)
		}
		return nil, err
	}
	if owner.Role != models.RolePublisher {
		return nil, fmt.Errorf("%w: owner must have the publisher role", models.ErrValidation)
	}

	if existing, err := s.publisherRepo.GetByName(req.Name); err == nil && existing.ID != 0 {
		return nil, fmt.Errorf("%w: publisher %q already exists", models.ErrValidation, req.Name)
	}

	publisher := &models.Publisher{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.publisherRepo.Create(publisher); err != nil {
		return nil, err
	}

	return s.publisherRepo.GetByID(publisher.ID)
}

func (s *publisherService) Get(id uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return publisher, nil
}

func (s *publisherService) List() ([]models.Publisher, error) {
	return s.publisherRepo.GetAll()
}
