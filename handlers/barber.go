package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	barberRepo "thecut/database/repository/barber"
	"thecut/middleware"
	"thecut/models"
)

// BarberHandler serves barber profiles.
type BarberHandler struct {
	Barbers barberRepo.BarberRepository
	Logger  *zap.Logger
}

func NewBarberHandler(repo barberRepo.BarberRepository, logger *zap.Logger) *BarberHandler {
	return &BarberHandler{Barbers: repo, Logger: logger}
}

// GetBarber returns the public profile for a slug. A missing profile is
// served as a placeholder, never as an error to the client, but is logged
// for operators.
func (h *BarberHandler) GetBarber(c *gin.Context) {
	slug := c.Param("slug")
	profile, err := h.Barbers.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			h.Logger.Warn("barber profile missing, serving placeholder", zap.String("slug", slug))
			c.JSON(http.StatusOK, models.PlaceholderBarber(slug))
			return
		}
		h.Logger.Error("failed to fetch barber profile", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch barber"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertBarber writes the calling barber's own profile. The registration
// flow and profile edits both land here.
func (h *BarberHandler) UpsertBarber(c *gin.Context) {
	slug := c.Param("slug")
	principal := middleware.GetPrincipal(c)
	if principal.BarberSlug != slug {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot write another barber's profile"})
		return
	}

	var profile models.BarberProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile", "details": err.Error()})
		return
	}
	profile.Slug = slug

	if err := h.Barbers.Upsert(c.Request.Context(), &profile); err != nil {
		h.Logger.Error("failed to upsert barber profile", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
