package handlers

import (
	"net/http"
	"strconv"

	"news-portal/models"
	"news-portal/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService services.PublisherService
}

func NewPublisherHandler(publisherService services.PublisherService) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService}
}

// RegisterPublisher creates a publisher owned by the caller. The owner is
// never taken from the request body.
func (h *PublisherHandler) RegisterPublisher(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publisher, err := h.publisherService.Register(req, userID.(uint))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, publisher)
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.publisherService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publishers": publishers})
}

func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID"})
		return
	}

	publisher, err := h.publisherService.Get(uint(id))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, publisher)
}
