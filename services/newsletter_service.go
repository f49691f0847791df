package services

import (
	"errors"
	"fmt"

	"news-portal/models"
	"news-portal/repositories"

	"gorm.io/gorm"
)

// NewsletterService is author-only end to end: unlike articles there is no
// editor override tier for newsletters.
type NewsletterService interface {
	Create(req models.NewsletterRequest, authorID uint, role models.Role) (*models.Newsletter, error)
	Get(id uint, actorID uint) (*models.Newsletter, error)
	ListByAuthor(authorID uint) ([]models.Newsletter, error)
	// Update rewrites the content fields and replaces the articles set
	// wholesale with the requested ids.
	Update(id uint, req models.NewsletterRequest, actorID uint) (*models.Newsletter, error)
	Delete(id uint, actorID uint) error
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	articleRepo    repositories.ArticleRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository, articleRepo repositories.ArticleRepository) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		articleRepo:    articleRepo,
	}
}

func (s *newsletterService) Create(req models.NewsletterRequest, authorID uint, role models.Role) (*models.Newsletter, error) {
	if role != models.RoleJournalist {
		return nil, fmt.Errorf("%w: only journalists can create newsletters", models.ErrPermissionDenied)
	}

	articles, err := s.resolveArticles(req.ArticleIDs)
	if err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		AuthorID: authorID,
		Articles: articles,
	}
	if err := s.newsletterRepo.Create(newsletter); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(newsletter.ID)
}

func (s *newsletterService) Get(id uint, actorID uint) (*models.Newsletter, error) {
	newsletter, err := s.getNewsletter(id)
	if err != nil {
		return nil, err
	}
	if newsletter.AuthorID != actorID {
		return nil, fmt.Errorf("%w: only the author may view this newsletter", models.ErrPermissionDenied)
	}
	return newsletter, nil
}

func (s *newsletterService) ListByAuthor(authorID uint) ([]models.Newsletter, error) {
	return s.newsletterRepo.GetByAuthor(authorID)
}

func (s *newsletterService) Update(id uint, req models.NewsletterRequest, actorID uint) (*models.Newsletter, error) {
	newsletter, err := s.getNewsletter(id)
	if err != nil {
		return nil, err
	}
	if newsletter.AuthorID != actorID {
		return nil, fmt.Errorf("%w: only the author may edit this newsletter", models.ErrPermissionDenied)
	}

	articles, err := s.resolveArticles(req.ArticleIDs)
	if err != nil {
		return nil, err
	}

	newsletter.Title = req.Title
	newsletter.Content = req.Content
	newsletter.Summary = req.Summary
	newsletter.Articles = nil
	if err := s.newsletterRepo.Update(newsletter); err != nil {
		return nil, err
	}
	if err := s.newsletterRepo.ReplaceArticles(newsletter, articles); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(newsletter.ID)
}

func (s *newsletterService) Delete(id uint, actorID uint) error {
	newsletter, err := s.getNewsletter(id)
	if err != nil {
		return err
	}
	if newsletter.AuthorID != actorID {
		return fmt.Errorf("%w: only the author may delete this newsletter", models.ErrPermissionDenied)
	}
	return s.newsletterRepo.Delete(id)
}

func (s *newsletterService) getNewsletter(id uint) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: newsletter %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return newsletter, nil
}

func (s *newsletterService) resolveArticles(ids []uint) ([]models.Article, error) {
	articles, err := s.articleRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(articles) != len(ids) {
		return nil, fmt.Errorf("%w: one or more articles do not exist", models.ErrNotFound)
	}
	return articles, nil
}
