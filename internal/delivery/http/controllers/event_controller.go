package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// CreateEventRequest is the request body for POST /events. The reservation
// fields (location, time window) are required; the reservation starts PENDING.
type CreateEventRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryID    *string   `json:"category_id"`
	IsPublic      bool      `json:"is_public"`
	StudentFee    float64   `json:"student_fee"`
	StaffFee      float64   `json:"staff_fee"`
	PublicFee     float64   `json:"public_fee"`
	PrepayAllowed bool      `json:"prepay_allowed"`
	LocationID    string    `json:"location_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.LocationID == "" {
		errs = append(errs, "location_id is required")
	}
	if c.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if c.EndTime.IsZero() {
		errs = append(errs, "end_time is required")
	}
	if !c.StartTime.IsZero() && !c.EndTime.IsZero() && !c.EndTime.After(c.StartTime) {
		errs = append(errs, "end_time must be after start_time")
	}
	if c.StudentFee < 0 || c.StaffFee < 0 || c.PublicFee < 0 {
		errs = append(errs, "fees must be non-negative")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}.
// Omitted fields are left unchanged.
type UpdateEventRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	CategoryID    *string    `json:"category_id"`
	IsPublic      *bool      `json:"is_public"`
	StudentFee    *float64   `json:"student_fee"`
	StaffFee      *float64   `json:"staff_fee"`
	PublicFee     *float64   `json:"public_fee"`
	PrepayAllowed *bool      `json:"prepay_allowed"`
	LocationID    *string    `json:"location_id"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
}

// EventListResponse is a paginated list of event details.
type EventListResponse struct {
	Events     []*domain.EventDetails `json:"events"`
	Pagination h.PaginationMeta       `json:"pagination"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event with its reservation
// @Description Creates the event and a PENDING reservation for the given location and time window in one transaction. The authenticated user becomes the creator.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event and reservation data"
// @Success 201 {object} helpers.APIResponse "data contains event, reservation, and location"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	details, err := c.Service.Create(r.Context(), userID, domain.CreateEventInput{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		IsPublic:      req.IsPublic,
		StudentFee:    req.StudentFee,
		StaffFee:      req.StaffFee,
		PublicFee:     req.PublicFee,
		PrepayAllowed: req.PrepayAllowed,
		LocationID:    req.LocationID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, details)
}

// GetEvent godoc
// @Summary Event details
// @Description Returns the event, its reservation and location, the attendee list, and the caller's permission flags (creator, mod, attend, prepay).
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event view"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	view, err := c.Service.Get(r.Context(), eventID, userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// UpdateEvent godoc
// @Summary Edit an event and its reservation
// @Description Creator only. Event fields and the reservation's location/time window are updated in one transaction; the reservation status is untouched.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated details"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	details, err := c.Service.Update(r.Context(), eventID, userID, domain.EventUpdate{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		IsPublic:      req.IsPublic,
		StudentFee:    req.StudentFee,
		StaffFee:      req.StaffFee,
		PublicFee:     req.PublicFee,
		PrepayAllowed: req.PrepayAllowed,
		LocationID:    req.LocationID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, details)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Creator only. Removes the reservation and then the event in one transaction.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains deleted: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Delete(r.Context(), eventID, userID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ListMyEvents godoc
// @Summary Events created by the caller
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the caller's events with reservations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/mine [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListAllEvents godoc
// @Summary Approved events
// @Description Lists approved reservations. With search_term, filters by case-insensitive substring over event name, event description, and location name.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param search_term query string false "Substring filter"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	params := h.ParsePagination(r)
	term := r.URL.Query().Get("search_term")
	events, total, err := c.Service.ListApproved(r.Context(), term, params)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
