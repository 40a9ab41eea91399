package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	"github.com/medishift/clinic-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	schedulerService shift.SchedulerService
}

func NewScheduleHandler(schedulerService shift.SchedulerService) ScheduleHandler {
	return &scheduleHandlerImpl{schedulerService: schedulerService}
}

type generateScheduleRequest struct {
	ClinicID string `json:"clinic_id"`
}

// Generate triggers a rotation run immediately instead of waiting for the
// scheduled job. With a clinic_id it runs for that clinic only; without one
// it runs for every clinic.
func (h *scheduleHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateScheduleRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	now := time.Now()

	if req.ClinicID != "" {
		result, err := h.schedulerService.GenerateMonthlySchedule(r.Context(), req.ClinicID, now)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Schedule generated", result)
		return
	}

	results, err := h.schedulerService.GenerateForAllClinics(r.Context(), now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedules generated", results)
}

func (h *scheduleHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "clinicId")
	if clinicID == "" {
		response.BadRequest(w, "Clinic ID is required", nil)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid month", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	result, err := h.schedulerService.ListPending(r.Context(), clinicID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	result, err := h.schedulerService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment approved", result)
}
