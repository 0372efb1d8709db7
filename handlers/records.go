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

// Handlers for the record collections: projects, work experience and
// testimonials. Reads are public; every mutation requires the admin token.
// PUT fully replaces the payload fields (created_at is preserved by the
// service, updated_at refreshed).

type ProjectsHandler struct {
	cfg *config.Config
	svc *portfolio.Service
}

func NewProjectsHandler(cfg *config.Config, svc *portfolio.Service) *ProjectsHandler {
	return &ProjectsHandler{cfg: cfg, svc: svc}
}

func (h *ProjectsHandler) Register(rg *gin.RouterGroup) {
	admin := middleware.RequireAdmin(h.cfg)
	rg.GET("/projects", h.List)
	rg.POST("/projects", admin, h.Create)
	rg.PUT("/projects/:id", admin, h.Update)
	rg.DELETE("/projects/:id", admin, h.Delete)
}

func projectFields(req models.ProjectCreate) bson.M {
	metrics := req.Metrics
	if metrics == nil {
		metrics = []models.ProjectMetric{}
	}
	return bson.M{
		"title":        req.Title,
		"description":  req.Description,
		"technologies": req.Technologies,
		"github":       req.Github,
		"demo":         req.Demo,
		"featured":     req.Featured,
		"metrics":      metrics,
	}
}

func (h *ProjectsHandler) List(c *gin.Context) {
	docs, err := h.svc.ListRecords(c.Request.Context(), portfolio.CollectionProjects, false)
	if err != nil {
		writeStoreError(c, err, "project")
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	var req models.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.CreateRecord(c.Request.Context(), portfolio.CollectionProjects, projectFields(req))
	if err != nil {
		writeStoreError(c, err, "project")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ProjectsHandler) Update(c *gin.Context) {
	var req models.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.UpdateRecord(c.Request.Context(), portfolio.CollectionProjects, c.Param("id"), projectFields(req))
	if err != nil {
		writeStoreError(c, err, "project")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ProjectsHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteRecord(c.Request.Context(), portfolio.CollectionProjects, c.Param("id")); err != nil {
		writeStoreError(c, err, "project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

type WorkExperienceHandler struct {
	cfg *config.Config
	svc *portfolio.Service
}

func NewWorkExperienceHandler(cfg *config.Config, svc *portfolio.Service) *WorkExperienceHandler {
	return &WorkExperienceHandler{cfg: cfg, svc: svc}
}

func (h *WorkExperienceHandler) Register(rg *gin.RouterGroup) {
	admin := middleware.RequireAdmin(h.cfg)
	rg.GET("/work-experience", h.List)
	rg.POST("/work-experience", admin, h.Create)
	rg.PUT("/work-experience/:id", admin, h.Update)
	rg.DELETE("/work-experience/:id", admin, h.Delete)
}

func workExperienceFields(req models.WorkExperienceCreate) bson.M {
	return bson.M{
		"title":        req.Title,
		"company":      req.Company,
		"period":       req.Period,
		"description":  req.Description,
		"technologies": req.Technologies,
		"logo":         req.Logo,
		"color":        req.Color,
	}
}

func (h *WorkExperienceHandler) List(c *gin.Context) {
	docs, err := h.svc.ListRecords(c.Request.Context(), portfolio.CollectionWorkExperience, false)
	if err != nil {
		writeStoreError(c, err, "work experience")
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *WorkExperienceHandler) Create(c *gin.Context) {
	var req models.WorkExperienceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.CreateRecord(c.Request.Context(), portfolio.CollectionWorkExperience, workExperienceFields(req))
	if err != nil {
		writeStoreError(c, err, "work experience")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *WorkExperienceHandler) Update(c *gin.Context) {
	var req models.WorkExperienceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.UpdateRecord(c.Request.Context(), portfolio.CollectionWorkExperience, c.Param("id"), workExperienceFields(req))
	if err != nil {
		writeStoreError(c, err, "work experience")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteRecord(c.Request.Context(), portfolio.CollectionWorkExperience, c.Param("id")); err != nil {
		writeStoreError(c, err, "work experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work experience deleted successfully"})
}

type TestimonialsHandler struct {
	cfg *config.Config
	svc *portfolio.Service
}

func NewTestimonialsHandler(cfg *config.Config, svc *portfolio.Service) *TestimonialsHandler {
	return &TestimonialsHandler{cfg: cfg, svc: svc}
}

func (h *TestimonialsHandler) Register(rg *gin.RouterGroup) {
	admin := middleware.RequireAdmin(h.cfg)
	rg.GET("/testimonials", h.List)
	rg.POST("/testimonials", admin, h.Create)
	rg.PUT("/testimonials/:id", admin, h.Update)
	rg.DELETE("/testimonials/:id", admin, h.Delete)
}

func testimonialFields(req models.TestimonialCreate) bson.M {
	return bson.M{
		"name":     req.Name,
		"position": req.Position,
		"company":  req.Company,
		"content":  req.Content,
		"rating":   req.Rating,
	}
}

func (h *TestimonialsHandler) List(c *gin.Context) {
	docs, err := h.svc.ListRecords(c.Request.Context(), portfolio.CollectionTestimonials, false)
	if err != nil {
		writeStoreError(c, err, "testimonial")
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *TestimonialsHandler) Create(c *gin.Context) {
	var req models.TestimonialCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.CreateRecord(c.Request.Context(), portfolio.CollectionTestimonials, testimonialFields(req))
	if err != nil {
		writeStoreError(c, err, "testimonial")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *TestimonialsHandler) Update(c *gin.Context) {
	var req models.TestimonialCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.svc.UpdateRecord(c.Request.Context(), portfolio.CollectionTestimonials, c.Param("id"), testimonialFields(req))
	if err != nil {
		writeStoreError(c, err, "testimonial")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *TestimonialsHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteRecord(c.Request.Context(), portfolio.CollectionTestimonials, c.Param("id")); err != nil {
		writeStoreError(c, err, "testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
