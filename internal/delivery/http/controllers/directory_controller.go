package controllers

import (
	"log/slog"
	"net/http"

	h "campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// DirectoryController serves the venue and category reference data. These
// routes do not require authentication.
type DirectoryController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewDirectoryController(logger *slog.Logger, svc domain.DirectoryService) *DirectoryController {
	return &DirectoryController{
		Logger:  logger,
		Service: svc,
	}
}

// ListLocations godoc
// @Summary List venues
// @Tags directory
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the venue list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations [get]
func (c *DirectoryController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Service.ListLocations(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, locations)
}

// GetLocation godoc
// @Summary Venue details
// @Description Returns the venue and the approved reservations booked there.
// @Tags directory
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} helpers.APIResponse "data contains the venue and its reservations"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /locations/{locationID} [get]
func (c *DirectoryController) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID := r.PathValue("locationID")
	if locationID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing locationID")
		return
	}
	view, err := c.Service.GetLocation(r.Context(), locationID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// ListCategories godoc
// @Summary List event categories
// @Tags directory
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the category list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /categories [get]
func (c *DirectoryController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, categories)
}
