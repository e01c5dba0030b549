package service

import (
	"fmt"
	"time"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/repository"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/schedule"
)

type ScheduleService struct {
	roadmapRepo *repository.RoadmapRepository
	taskRepo    *repository.TaskRepository
}

func NewScheduleService(
	roadmapRepo *repository.RoadmapRepository,
	taskRepo *repository.TaskRepository,
) *ScheduleService {
	return &ScheduleService{
		roadmapRepo: roadmapRepo,
		taskRepo:    taskRepo,
	}
}

// RescheduleTask runs the reschedule engine over the stored roadmap snapshot
// and persists the resulting dates and total-time estimate. Last write wins;
// there is no locking against concurrent edits.
func (s *ScheduleService) RescheduleTask(roadmapID, taskID, newStartDate string) (models.Roadmap, error) {
	roadmap, err := s.roadmapRepo.GetRoadmap(roadmapID)
	if err != nil {
		return models.Roadmap{}, err
	}

	updated, err := schedule.RescheduleRoadmap(roadmap, taskID, newStartDate)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("reschedule task %s: %w", taskID, err)
	}

	if err := s.taskRepo.SaveTaskDates(updated.Modules); err != nil {
		return models.Roadmap{}, err
	}
	if updated.TotalTimeEstimate != roadmap.TotalTimeEstimate {
		if err := s.roadmapRepo.UpdateTotalTime(updated.ID, updated.TotalTimeEstimate); err != nil {
			return models.Roadmap{}, err
		}
	}

	return updated, nil
}

// RecalculateTotalTime recomputes the duration summary from the stored tasks
// without persisting anything.
func (s *ScheduleService) RecalculateTotalTime(roadmapID string) (string, error) {
	roadmap, err := s.roadmapRepo.GetRoadmap(roadmapID)
	if err != nil {
		return "", err
	}
	return schedule.RecalculateTotalTime(roadmap.Modules)
}

// ToggleTaskCompletion flips the task's completed flag, stamping CompletedAt
// on completion and clearing it when the task is reopened.
func (s *ScheduleService) ToggleTaskCompletion(roadmapID, taskID string) (models.Task, error) {
	roadmap, err := s.roadmapRepo.GetRoadmap(roadmapID)
	if err != nil {
		return models.Task{}, err
	}

	var task *models.Task
	for mi := range roadmap.Modules {
		for ti := range roadmap.Modules[mi].Tasks {
			if roadmap.Modules[mi].Tasks[ti].ID == taskID {
				task = &roadmap.Modules[mi].Tasks[ti]
			}
		}
	}
	if task == nil {
		return models.Task{}, fmt.Errorf("%w: %s", schedule.ErrTaskNotFound, taskID)
	}

	task.IsCompleted = !task.IsCompleted
	if task.IsCompleted {
		now := time.Now().UTC()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := s.taskRepo.UpdateCompletion(task.ID, task.IsCompleted, task.CompletedAt); err != nil {
		return models.Task{}, err
	}

	return *task, nil
}
