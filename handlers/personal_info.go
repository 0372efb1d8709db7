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

// PersonalInfoHandler serves the singleton "about me" document. Unlike the
// list singletons, a missing personal-info document is a 404: the site cannot
// render without it and an empty object would hide a missing seed.
type PersonalInfoHandler struct {
	cfg *config.Config
	svc *portfolio.Service
}

func NewPersonalInfoHandler(cfg *config.Config, svc *portfolio.Service) *PersonalInfoHandler {
	return &PersonalInfoHandler{cfg: cfg, svc: svc}
}

func (h *PersonalInfoHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/personal-info", h.Get)
	rg.PUT("/personal-info", middleware.RequireAdmin(h.cfg), h.Update)
}

func (h *PersonalInfoHandler) Get(c *gin.Context) {
	doc, err := h.svc.Singleton(c.Request.Context(), portfolio.CollectionPersonalInfo)
	if err != nil {
		writeStoreError(c, err, "personal info")
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Personal info not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *PersonalInfoHandler) Update(c *gin.Context) {
	var req models.PersonalInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := bson.M{
		"name":        req.Name,
		"title":       req.Title,
		"description": req.Description,
		"email":       req.Email,
		"phone":       req.Phone,
		"location":    req.Location,
		"github":      req.Github,
		"linkedin":    req.Linkedin,
		"twitter":     req.Twitter,
	}
	doc, err := h.svc.ReplaceSingleton(c.Request.Context(), portfolio.CollectionPersonalInfo, fields)
	if err != nil {
		writeStoreError(c, err, "personal info")
		return
	}
	c.JSON(http.StatusOK, doc)
}
