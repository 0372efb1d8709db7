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

// SingletonHandler serves the list-shaped singleton resources: skills,
// approach, dashboard metrics and certifications. All of them share the same
// protocol — read the one document or an empty default, replace it wholesale
// on PUT. Skills and approach speak bare lists on the wire; metrics and
// certifications use wrapped documents, mirroring the frontend contracts.
type SingletonHandler struct {
	cfg *config.Config
	svc *portfolio.Service
}

func NewSingletonHandler(cfg *config.Config, svc *portfolio.Service) *SingletonHandler {
	return &SingletonHandler{cfg: cfg, svc: svc}
}

func (h *SingletonHandler) Register(rg *gin.RouterGroup) {
	admin := middleware.RequireAdmin(h.cfg)
	rg.GET("/skills", h.GetSkills)
	rg.PUT("/skills", admin, h.UpdateSkills)
	rg.GET("/approach", h.GetApproach)
	rg.PUT("/approach", admin, h.UpdateApproach)
	rg.GET("/metrics", h.GetMetrics)
	rg.PUT("/metrics", admin, h.UpdateMetrics)
	rg.GET("/certifications", h.GetCertifications)
	rg.PUT("/certifications", admin, h.UpdateCertifications)
}

func (h *SingletonHandler) GetSkills(c *gin.Context) {
	doc, err := h.svc.SingletonOrEmpty(c.Request.Context(), portfolio.CollectionSkills, "skills")
	if err != nil {
		writeStoreError(c, err, "skills")
		return
	}
	c.JSON(http.StatusOK, listField(doc, "skills"))
}

func (h *SingletonHandler) UpdateSkills(c *gin.Context) {
	var skills []models.Skill
	if err := c.ShouldBindJSON(&skills); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	if _, err := h.svc.ReplaceSingleton(c.Request.Context(), portfolio.CollectionSkills, bson.M{"skills": skills}); err != nil {
		writeStoreError(c, err, "skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SingletonHandler) GetApproach(c *gin.Context) {
	doc, err := h.svc.SingletonOrEmpty(c.Request.Context(), portfolio.CollectionApproach, "items")
	if err != nil {
		writeStoreError(c, err, "approach")
		return
	}
	c.JSON(http.StatusOK, listField(doc, "items"))
}

func (h *SingletonHandler) UpdateApproach(c *gin.Context) {
	var items []models.ApproachItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.ApproachItem{}
	}
	if _, err := h.svc.ReplaceSingleton(c.Request.Context(), portfolio.CollectionApproach, bson.M{"items": items}); err != nil {
		writeStoreError(c, err, "approach")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SingletonHandler) GetMetrics(c *gin.Context) {
	doc, err := h.svc.SingletonOrEmpty(c.Request.Context(), portfolio.CollectionDashboardMetrics, "metrics")
	if err != nil {
		writeStoreError(c, err, "metrics")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *SingletonHandler) UpdateMetrics(c *gin.Context) {
	var req models.DashboardMetricsDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.ReplaceSingleton(c.Request.Context(), portfolio.CollectionDashboardMetrics, bson.M{"metrics": req.Metrics})
	if err != nil {
		writeStoreError(c, err, "metrics")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *SingletonHandler) GetCertifications(c *gin.Context) {
	doc, err := h.svc.SingletonOrEmpty(c.Request.Context(), portfolio.CollectionCertifications, "certifications")
	if err != nil {
		writeStoreError(c, err, "certifications")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *SingletonHandler) UpdateCertifications(c *gin.Context) {
	var req models.CertificationsDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.ReplaceSingleton(c.Request.Context(), portfolio.CollectionCertifications, bson.M{"certifications": req.Certifications})
	if err != nil {
		writeStoreError(c, err, "certifications")
		return
	}
	c.JSON(http.StatusOK, doc)
}
