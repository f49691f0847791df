package services

import (
	"errors"
	"fmt"

	"news-portal/models"
	"news-portal/notify"
	"news-portal/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	Create(req models.CreateArticleRequest, authorID uint, role models.Role) (*models.Article, error)
	Get(id uint) (*models.Article, error)
	// Update modifies content fields only. The author is allowed to edit
	// their own article; an editor may edit any article, but authorship is
	// pinned to the existing author no matter what the input carries.
	Update(id uint, req models.UpdateArticleRequest, actorID uint, role models.Role) (*models.Article, error)
	// Delete is allowed for the author in any state, and for an editor
	// only while the article is still pending. Approved content is
	// protected from editorial deletion.
	Delete(id uint, actorID uint, role models.Role) error
	// Approve performs the one-way Pending->Approved transition. It is
	// editor-only and idempotent: approving an already approved article
	// returns it unchanged and dispatches nothing.
	Approve(id uint, role models.Role) (*models.Article, error)
	ListPublic(page, limit int) ([]models.Article, int64, error)
	ListByAuthor(authorID uint) ([]models.Article, error)
	ListPending(role models.Role) ([]models.Article, error)
	ListByPublisherOwner(ownerID uint, role models.Role) ([]models.Article, error)
	ListSubscribed(userID uint) ([]models.Article, error)
}

type articleService struct {
	articleRepo   repositories.ArticleRepository
	publisherRepo repositories.PublisherRepository
	dispatcher    notify.Dispatcher
}

func NewArticleService(articleRepo repositories.ArticleRepository, publisherRepo repositories.PublisherRepository, dispatcher notify.Dispatcher) ArticleService {
	return &articleService{
		articleRepo:   articleRepo,
		publisherRepo: publisherRepo,
		dispatcher:    dispatcher,
	}
}

func (s *articleService) Create(req models.CreateArticleRequest, authorID uint, role models.Role) (*models.Article, error) {
	if role != models.RoleJournalist {
		return nil, fmt.Errorf("%w: only journalists can submit articles", models.ErrPermissionDenied)
	}

	if _, err := s.publisherRepo.GetByID(req.PublisherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher %d", models.ErrNotFound, req.PublisherID)
		}
		return nil, err
	}

	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		AuthorID:    authorID,
		PublisherID: req.PublisherID,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) Get(id uint) (*models.Article, error) {
	return s.getArticle(id)
}

func (s *articleService) Update(id uint, req models.UpdateArticleRequest, actorID uint, role models.Role) (*models.Article, error) {
	article, err := s.getArticle(id)
	if err != nil {
		return nil, err
	}

	isAuthor := article.AuthorID == actorID && role == models.RoleJournalist
	if !isAuthor && role != models.RoleEditor {
		return nil, fmt.Errorf("%w: only the author or an editor may edit this article", models.ErrPermissionDenied)
	}

	if _, err := s.publisherRepo.GetByID(req.PublisherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher %d", models.ErrNotFound, req.PublisherID)
		}
		return nil, err
	}

	// Content fields only; AuthorID stays untouched.
	article.Title = req.Title
	article.Content = req.Content
	article.Summary = req.Summary
	article.PublisherID = req.PublisherID
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) Delete(id uint, actorID uint, role models.Role) error {
	article, err := s.getArticle(id)
	if err != nil {
		return err
	}

	switch {
	case article.AuthorID == actorID:
		// Authors may delete their own articles in any state.
	case role == models.RoleEditor:
		if article.Approved {
			return fmt.Errorf("%w: approved articles cannot be deleted by editors", models.ErrPermissionDenied)
		}
	default:
		return fmt.Errorf("%w: only the author or an editor may delete this article", models.ErrPermissionDenied)
	}

	return s.articleRepo.Delete(id)
}

func (s *articleService) Approve(id uint, role models.Role) (*models.Article, error) {
	if role != models.RoleEditor {
		return nil, fmt.Errorf("%w: only editors can approve articles", models.ErrPermissionDenied)
	}

	if _, err := s.getArticle(id); err != nil {
		return nil, err
	}

	transitioned, err := s.articleRepo.Approve(id)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Exactly one notification batch per real transition. The dispatch is
	// fire-and-forget; its failures never reach this caller.
	if transitioned {
		s.dispatcher.ArticleApproved(article)
	}

	return article, nil
}

func (s *articleService) ListPublic(page, limit int) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.articleRepo.GetApproved(limit, (page-1)*limit)
}

func (s *articleService) ListByAuthor(authorID uint) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(authorID)
}

func (s *articleService) ListPending(role models.Role) ([]models.Article, error) {
	if role != models.RoleEditor {
		return nil, fmt.Errorf("%w: only editors can review pending articles", models.ErrPermissionDenied)
	}
	return s.articleRepo.GetPending()
}

func (s *articleService) ListByPublisherOwner(ownerID uint, role models.Role) ([]models.Article, error) {
	if role != models.RolePublisher {
		return nil, fmt.Errorf("%w: only publishers can view their publishing dashboard", models.ErrPermissionDenied)
	}
	return s.articleRepo.GetByPublisherOwner(ownerID)
}

func (s *articleService) ListSubscribed(userID uint) ([]models.Article, error) {
	return s.articleRepo.GetSubscribed(userID)
}

func (s *articleService) getArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return article, nil
}
