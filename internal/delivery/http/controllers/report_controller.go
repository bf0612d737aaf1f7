package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// SummaryRequest is the request body for POST /reports/summary. An omitted or
// zero week start means "now".
type SummaryRequest struct {
	WeekStartDatetime time.Time `json:"week_start_datetime"`
}

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{
		Logger:  logger,
		Service: svc,
	}
}

// Summary godoc
// @Summary Weekly summary report
// @Description Staff only. Aggregates events, attendance, revenue, and per-category registration stats over the seven days starting at the given time. GET uses the current time; POST accepts an explicit week start.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SummaryRequest false "Week start (POST only; RFC 3339)"
// @Success 200 {object} helpers.APIResponse "data contains the summary report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/summary [post]
func (c *ReportController) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	weekStart := time.Now()
	if r.Method == http.MethodPost {
		var req SummaryRequest
		if !h.DecodeAndValidate(w, r, &req) {
			return
		}
		if !req.WeekStartDatetime.IsZero() {
			weekStart = req.WeekStartDatetime
		}
	}
	report, err := c.Service.Summary(r.Context(), userID, weekStart)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}
