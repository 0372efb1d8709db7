package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/starkdipesh/portfolio-api/internal/config"
	"github.com/starkdipesh/portfolio-api/internal/models"
	"github.com/starkdipesh/portfolio-api/internal/portfolio"
	"github.com/starkdipesh/portfolio-api/pkg/middleware"
)

// ContactHandler manages contact-form messages. Submission is the one
// unauthenticated write in the API; reading, marking read and deleting are
// admin-only. Messages list newest first.
type ContactHandler struct {
	cfg *config.Config
	svc *portfolio.Service
}

func NewContactHandler(cfg *config.Config, svc *portfolio.Service) *ContactHandler {
	return &ContactHandler{cfg: cfg, svc: svc}
}

func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	admin := middleware.RequireAdmin(h.cfg)
	rg.POST("/contact", h.Submit)
	rg.GET("/contact", admin, h.List)
	rg.PUT("/contact/:id/read", admin, h.MarkRead)
	rg.DELETE("/contact/:id", admin, h.Delete)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactMessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := bson.M{
		"name":        req.Name,
		"email":       req.Email,
		"message":     req.Message,
		"projectType": req.ProjectType,
	}
	if _, err := h.svc.CreateContactMessage(c.Request.Context(), fields); err != nil {
		writeStoreError(c, err, "message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your message has been sent successfully!"})
}

func (h *ContactHandler) List(c *gin.Context) {
	docs, err := h.svc.ListRecords(c.Request.Context(), portfolio.CollectionContactMessages, true)
	if err != nil {
		writeStoreError(c, err, "message")
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkMessageRead(c.Request.Context(), c.Param("id")); err != nil {
		writeStoreError(c, err, "message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteRecord(c.Request.Context(), portfolio.CollectionContactMessages, c.Param("id")); err != nil {
		writeStoreError(c, err, "message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted successfully"})
}
