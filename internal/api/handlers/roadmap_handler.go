package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/repository"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/service"
)

type CreateRoadmapRequestBody struct {
	UserID  string `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateRoadmapRequestBody struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type ShareRoadmapRequestBody struct {
	UserID string `json:"user_id" validate:"required"`
}

type RoadmapHandler struct {
	roadmapService *service.RoadmapService
	validate       *validator.Validate
}

func NewRoadmapHandler(roadmapService *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
		validate:       validator.New(),
	}
}

func (h *RoadmapHandler) CreateRoadmap(w http.ResponseWriter, r *http.Request) {
	var reqBody CreateRoadmapRequestBody
	if !decodeAndValidate(w, r, h.validate, &reqBody) {
		return
	}

	roadmap, err := h.roadmapService.CreateFromContent(r.Context(), reqBody.UserID, reqBody.Content)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Error trying to create roadmap: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"roadmap": roadmap,
	})
}

func (h *RoadmapHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	roadmap, err := h.roadmapService.GetRoadmap(id)
	if err != nil {
		writeRoadmapError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"roadmap": roadmap,
	})
}

func (h *RoadmapHandler) ListRoadmaps(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "user_id query parameter is required",
		})
		return
	}

	roadmaps, err := h.roadmapService.GetRoadmapsByUser(userID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Error trying to get roadmaps: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"roadmaps": roadmaps,
	})
}

func (h *RoadmapHandler) UpdateRoadmap(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var reqBody UpdateRoadmapRequestBody
	if !decodeAndValidate(w, r, h.validate, &reqBody) {
		return
	}

	roadmap, err := h.roadmapService.UpdateInfo(id, reqBody.Title, reqBody.Description)
	if err != nil {
		writeRoadmapError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"roadmap": roadmap,
	})
}

func (h *RoadmapHandler) DeleteRoadmap(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.roadmapService.DeleteRoadmap(id); err != nil {
		writeRoadmapError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RoadmapHandler) ShareRoadmap(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var reqBody ShareRoadmapRequestBody
	if !decodeAndValidate(w, r, h.validate, &reqBody) {
		return
	}

	if err := h.roadmapService.Share(id, reqBody.UserID); err != nil {
		writeRoadmapError(w, err)
		return
	}

	collaborators, err := h.roadmapService.GetCollaborators(id)
	if err != nil {
		writeRoadmapError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"collaborators": collaborators,
	})
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, reqBody interface{}) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Error trying to read the body: " + err.Error(),
		})
		return false
	}

	if err := json.Unmarshal(body, reqBody); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "JSON error: " + err.Error(),
		})
		return false
	}

	if err := validate.Struct(reqBody); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Validation error: " + err.Error(),
		})
		return false
	}

	return true
}

func writeRoadmapError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrRoadmapNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Roadmap not found",
		})
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "Error trying to process roadmap: " + err.Error(),
	})
}
