// Package notify delivers the side effects of an article approval: one
// mail per follower of the article's author, plus a short public post on
// the configured social channel. Deliveries run in background goroutines
// and every failure is logged and discarded, so the approval that
// triggered them can never be rolled back or delayed by a delivery.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"news-portal/config"
	"news-portal/models"
	"news-portal/repositories"

	"github.com/google/uuid"
)

const (
	mailPreviewLength       = 200
	postBudget              = 280
	maxConcurrentDeliveries = 10
	deliveryTimeout         = 30 * time.Second
)

type Dispatcher interface {
	// ArticleApproved dispatches the notification batch for a freshly
	// approved article. It returns immediately; the caller must only
	// invoke it on a real Pending->Approved transition.
	ArticleApproved(article *models.Article)

	// Shutdown blocks until in-flight deliveries finish or ctx expires.
	Shutdown(ctx context.Context) error
}

type dispatcher struct {
	subscriptions repositories.SubscriptionRepository
	mailer        Mailer
	poster        SocialPoster
	prefix        string
	baseURL       string
	pool          chan struct{}
	wg            sync.WaitGroup
	logger        *slog.Logger
}

func NewDispatcher(subscriptions repositories.SubscriptionRepository, mailer Mailer, poster SocialPoster, cfg config.SocialConfig) Dispatcher {
	return &dispatcher{
		subscriptions: subscriptions,
		mailer:        mailer,
		poster:        poster,
		prefix:        cfg.Prefix,
		baseURL:       strings.TrimRight(cfg.SiteBaseURL, "/"),
		pool:          make(chan struct{}, maxConcurrentDeliveries),
		logger:        slog.Default(),
	}
}

func (d *dispatcher) ArticleApproved(article *models.Article) {
	if article == nil {
		return
	}

	requestID := uuid.NewString()
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.notifyFollowers(requestID, article)
		d.announce(requestID, article)
	}()
}

// notifyFollowers fans one mail out per follower with an email address.
// Each delivery failure is logged on its own and does not stop the rest
// of the batch.
func (d *dispatcher) notifyFollowers(requestID string, article *models.Article) {
	followers, err := d.subscriptions.GetFollowers(article.AuthorID)
	if err != nil {
		d.logger.Warn("could not enumerate followers",
			slog.String("request_id", requestID),
			slog.Uint64("article_id", uint64(article.ID)),
			slog.Any("error", err))
		return
	}

	subject := "New Article: " + article.Title
	body := preview(article.Content)

	for _, follower := range followers {
		if follower.Email == "" {
			continue
		}
		d.pool <- struct{}{}
		d.wg.Add(1)
		go func(to string) {
			defer d.wg.Done()
			defer func() { <-d.pool }()
			if err := d.mailer.Send(to, subject, body); err != nil {
				d.logger.Warn("follower mail failed",
					slog.String("request_id", requestID),
					slog.String("to", to),
					slog.Any("error", fmt.Errorf("%w: %v", models.ErrDelivery, err)))
			}
		}(follower.Email)
	}
}

func (d *dispatcher) announce(requestID string, article *models.Article) {
	if d.poster == nil || !d.poster.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	postID, err := d.poster.Publish(ctx, d.buildPost(article))
	if err != nil {
		d.logger.Warn("social post failed",
			slog.String("request_id", requestID),
			slog.Uint64("article_id", uint64(article.ID)),
			slog.Any("error", fmt.Errorf("%w: %v", models.ErrDelivery, err)))
		return
	}

	d.logger.Info("social post published",
		slog.String("request_id", requestID),
		slog.Uint64("article_id", uint64(article.ID)),
		slog.String("post_id", postID))
}

// buildPost assembles "<prefix> <title> <link>" and truncates the title
// so the whole text fits the fixed post budget.
func (d *dispatcher) buildPost(article *models.Article) string {
	link := fmt.Sprintf("%s/articles/%d", d.baseURL, article.ID)
	text := strings.TrimSpace(fmt.Sprintf("%s %s %s", d.prefix, article.Title, link))
	if utf8.RuneCountInString(text) <= postBudget {
		return text
	}

	// Two separating spaces plus the ellipsis also count against the budget.
	allowed := postBudget - utf8.RuneCountInString(d.prefix) - utf8.RuneCountInString(link) - 3
	if allowed < 0 {
		allowed = 0
	}
	title := []rune(article.Title)
	if len(title) > allowed {
		title = title[:allowed]
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s… %s", d.prefix, string(title), link))
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) > mailPreviewLength {
		runes = runes[:mailPreviewLength]
	}
	return string(runes)
}

func (d *dispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
