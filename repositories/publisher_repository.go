package repositories

import (
	"news-portal/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *models.Publisher) error
	GetByID(id uint) (*models.Publisher, error)
	GetByName(name string) (*models.Publisher, error)
	GetAll() ([]models.Publisher, error)
	GetByOwner(ownerID uint) ([]models.Publisher, error)
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *publisherRepository) GetByID(id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Preload("Owner").
		Preload("Editors").
		Preload("Journalists").
		First(&publisher, id).Error
	return &publisher, err
}

func (r *publisherRepository) GetByName(name string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Where("name = ?", name).First(&publisher).Error
	return &publisher, err
}

func (r *publisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Preload("Owner").Order("name asc").Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) GetByOwner(ownerID uint) ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Where("owner_id = ?", ownerID).Find(&publishers).Error
	return publishers, err
}
