package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
	"github.com/shiftgrid/scheduler-backend-go/internal/handler/http/response"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForWeek(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Grid(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule entry created successfully", result)
}

func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		response.BadRequest(w, "organization_id query parameter is required", nil)
		return
	}

	var date *string
	if d := r.URL.Query().Get("date"); d != "" {
		date = &d
	}

	result, err := h.scheduleService.List(r.Context(), organizationID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) ListForWeek(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if organizationID == "" || start == "" || end == "" {
		response.BadRequest(w, "organization_id, start and end query parameters are required", nil)
		return
	}

	result, err := h.scheduleService.ListForWeek(r.Context(), organizationID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	var req schedule.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry updated successfully", result)
}

func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.scheduleService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted successfully", nil)
}

// Grid returns the week view for the week containing ?date= (today when
// absent). ?organization_id= is optional; without it the caller's first
// owned organization is used.
func (h *scheduleHandlerImpl) Grid(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")

	ref := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse(schedule.DateLayout, d)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		ref = parsed
	}

	result, err := h.scheduleService.Grid(r.Context(), organizationID, ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
