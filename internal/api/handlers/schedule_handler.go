package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/schedule"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/service"
)

type RescheduleRequestBody struct {
	TaskID       string `json:"task_id" validate:"required"`
	NewStartDate string `json:"new_start_date" validate:"omitempty,datetime=2006-01-02"`
}

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	validate        *validator.Validate
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		validate:        validator.New(),
	}
}

func (h *ScheduleHandler) RescheduleTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var reqBody RescheduleRequestBody
	if !decodeAndValidate(w, r, h.validate, &reqBody) {
		return
	}

	roadmap, err := h.scheduleService.RescheduleTask(id, reqBody.TaskID, reqBody.NewStartDate)
	if err != nil {
		writeScheduleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"roadmap": roadmap,
	})
}

func (h *ScheduleHandler) GetDuration(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	total, err := h.scheduleService.RecalculateTotalTime(id)
	if err != nil {
		writeScheduleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"total_time_estimate": total,
	})
}

func (h *ScheduleHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	taskID := r.PathValue("taskId")

	task, err := h.scheduleService.ToggleTaskCompletion(id, taskID)
	if err != nil {
		writeScheduleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"task": task,
	})
}

// The UI degrades per error class: a missing task or roadmap means the view
// is stale (404), a bad date is a caller bug (400), anything else is a 500.
func writeScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrTaskNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Task not found in roadmap",
		})
	case errors.Is(err, schedule.ErrInvalidDate):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Invalid date: " + err.Error(),
		})
	default:
		writeRoadmapError(w, err)
	}
}
