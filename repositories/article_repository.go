package repositories

import (
	"news-portal/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	// Approve flips the approved flag as a single conditional update and
	// reports whether this call performed the Pending->Approved transition.
	// Two concurrent approvals of the same article see at most one true.
	Approve(id uint) (bool, error)
	GetApproved(limit, offset int) ([]models.Article, int64, error)
	GetPending() ([]models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	GetByPublisherOwner(ownerID uint) ([]models.Article, error)
	// GetSubscribed returns the deduplicated union of approved articles
	// from the user's subscribed publishers and followed journalists,
	// most recent first.
	GetSubscribed(userID uint) ([]models.Article, error)
	GetByIDs(ids []uint) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Publisher").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) Approve(id uint) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND approved = ?", id, false).
		Update("approved", true)
	return res.RowsAffected == 1, res.Error
}

func (r *articleRepository) GetApproved(limit, offset int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Where("approved = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").Preload("Publisher").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) GetPending() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("approved = ?", false).
		Preload("Author").Preload("Publisher").
		Order("created_at desc, id desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ?", authorID).
		Preload("Publisher").
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByPublisherOwner(ownerID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Joins("JOIN publishers ON publishers.id = articles.publisher_id").
		Where("publishers.owner_id = ?", ownerID).
		Preload("Author").Preload("Publisher").
		Order("articles.created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetSubscribed(userID uint) ([]models.Article, error) {
	subscribedPublishers := r.db.Table("user_subscribed_publishers").
		Select("publisher_id").
		Where("user_id = ?", userID)
	followedJournalists := r.db.Table("user_followed_journalists").
		Select("journalist_id").
		Where("follower_id = ?", userID)

	var articles []models.Article
	err := r.db.Where("approved = ?", true).
		Where("publisher_id IN (?) OR author_id IN (?)", subscribedPublishers, followedJournalists).
		Order("created_at desc, id desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByIDs(ids []uint) ([]models.Article, error) {
	var articles []models.Article
	if len(ids) == 0 {
		return articles, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&articles).Error
	return articles, err
}
