package api

import (
	"database/sql"
	"net/http"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/api/handlers"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/client"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/repository"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/service"
)

func SetupRouter(db *sql.DB, generator client.RoadmapGenerator) *http.ServeMux {
	mux := http.NewServeMux()

	roadmapRepo := repository.NewRoadmapRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	collabRepo := repository.NewCollaboratorRepository(db)

	roadmapService := service.NewRoadmapService(generator, roadmapRepo, collabRepo)
	scheduleService := service.NewScheduleService(roadmapRepo, taskRepo)

	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	mux.HandleFunc("POST /roadmaps", roadmapHandler.CreateRoadmap)
	mux.HandleFunc("GET /roadmaps", roadmapHandler.ListRoadmaps)
	mux.HandleFunc("GET /roadmaps/{id}", roadmapHandler.GetRoadmap)
	mux.HandleFunc("PUT /roadmaps/{id}", roadmapHandler.UpdateRoadmap)
	mux.HandleFunc("DELETE /roadmaps/{id}", roadmapHandler.DeleteRoadmap)
	mux.HandleFunc("POST /roadmaps/{id}/share", roadmapHandler.ShareRoadmap)

	mux.HandleFunc("POST /roadmaps/{id}/reschedule", scheduleHandler.RescheduleTask)
	mux.HandleFunc("GET /roadmaps/{id}/duration", scheduleHandler.GetDuration)
	mux.HandleFunc("POST /roadmaps/{id}/tasks/{taskId}/toggle", scheduleHandler.ToggleTask)

	return mux
}
