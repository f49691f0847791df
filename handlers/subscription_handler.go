package handlers

import (
	"net/http"
	"strconv"

	"news-portal/models"
	"news-portal/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
	articleService      services.ArticleService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService, articleService services.ArticleService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		articleService:      articleService,
	}
}

func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	subscriptions, err := h.subscriptionService.List(userID.(uint))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

func (h *SubscriptionHandler) SubscribePublisher(c *gin.Context) {
	h.togglePublisher(c, h.subscriptionService.SubscribePublisher, "Subscribed")
}

func (h *SubscriptionHandler) UnsubscribePublisher(c *gin.Context) {
	h.togglePublisher(c, h.subscriptionService.UnsubscribePublisher, "Unsubscribed")
}

func (h *SubscriptionHandler) SubscribeJournalist(c *gin.Context) {
	h.toggleJournalist(c, h.subscriptionService.SubscribeJournalist, "Subscribed")
}

func (h *SubscriptionHandler) UnsubscribeJournalist(c *gin.Context) {
	h.toggleJournalist(c, h.subscriptionService.UnsubscribeJournalist, "Unsubscribed")
}

func (h *SubscriptionHandler) togglePublisher(c *gin.Context, op func(userID, publisherID uint) error, verb string) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID"})
		return
	}

	if err := op(userID.(uint), uint(id)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": verb})
}

func (h *SubscriptionHandler) toggleJournalist(c *gin.Context, op func(userID, journalistID uint) error, verb string) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journalist ID"})
		return
	}

	if err := op(userID.(uint), uint(id)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": verb})
}

// GetSubscribedArticles is the machine-readable feed of approved articles
// from the reader's subscriptions. Any non-reader role receives 403 with
// a fixed detail message.
func (h *SubscriptionHandler) GetSubscribedArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")
	role := models.Role(c.GetString("role"))

	if role != models.RoleReader {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only readers can access subscribed articles."})
		return
	}

	articles, err := h.articleService.ListSubscribed(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		out = append(out, models.NewArticleResponse(article))
	}

	c.JSON(http.StatusOK, out)
}
