package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/starkdipesh/portfolio-api/internal/portfolio"
	"github.com/starkdipesh/portfolio-api/pkg/logger"
)

// writeStoreError maps service errors onto the API error contract. The label
// is the lowercase resource name, e.g. "project" or "work experience".
func writeStoreError(c *gin.Context, err error, label string) {
	switch {
	case errors.Is(err, portfolio.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
	case errors.Is(err, portfolio.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": capitalize(label) + " not found"})
	default:
		logger.Errorf("store error (%s): %v", label, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// listField extracts the named list from a singleton document, defaulting to
// an empty list when the key is missing (older documents may predate a field).
func listField(doc bson.M, field string) interface{} {
	if v, ok := doc[field]; ok && v != nil {
		return v
	}
	return []interface{}{}
}
