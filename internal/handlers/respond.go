package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/profiled/internal/helpers"
	"github.com/joshua-takyi/profiled/internal/models"
	"github.com/joshua-takyi/profiled/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID pulls a document or sub-entry identifier out of the URL.
// Responds 400 and returns false when the value is missing or malformed.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	raw := helpers.StringTrim(c.Param(param))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": param + " is required"})
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param + " format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// serviceError translates service failures into the HTTP taxonomy. Anything
// unrecognized is an internal error.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrProfileNotFound), errors.Is(err, models.ErrSubEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateEmail), errors.Is(err, models.ErrInvalidInput), errors.Is(err, services.ErrNoUpdateFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrWrongCredentials):
		c.JSON(http.StatusForbidden, gin.H{"error": "Wrong Credentials"})
	default:
		// Cipher and driver failures carry internals; don't echo them.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
