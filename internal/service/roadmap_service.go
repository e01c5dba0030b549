package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/client"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/repository"
	"github.com/IIDOUY/AI-Study-Roadmap/internal/schedule"
)

type RoadmapService struct {
	generator   client.RoadmapGenerator
	roadmapRepo *repository.RoadmapRepository
	collabRepo  *repository.CollaboratorRepository
}

func NewRoadmapService(
	generator client.RoadmapGenerator,
	roadmapRepo *repository.RoadmapRepository,
	collabRepo *repository.CollaboratorRepository,
) *RoadmapService {
	return &RoadmapService{
		generator:   generator,
		roadmapRepo: roadmapRepo,
		collabRepo:  collabRepo,
	}
}

// CreateFromContent asks the generator for a roadmap draft, assigns identity
// to every record, derives the total-time estimate and persists the result.
func (s *RoadmapService) CreateFromContent(ctx context.Context, userID, content string) (models.Roadmap, error) {
	roadmap, err := s.generator.GenerateRoadmap(ctx, content)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("generate roadmap: %w", err)
	}

	roadmap.ID = uuid.NewString()
	roadmap.UserID = userID
	for mi := range roadmap.Modules {
		module := &roadmap.Modules[mi]
		module.ID = uuid.NewString()
		for ti := range module.Tasks {
			task := &module.Tasks[ti]
			task.ID = uuid.NewString()
			if task.Priority == "" {
				task.Priority = models.PriorityMedium
			}
			for si := range task.SubTasks {
				task.SubTasks[si].ID = uuid.NewString()
			}
		}
	}

	total, err := schedule.RecalculateTotalTime(roadmap.Modules)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("recalculate total time: %w", err)
	}
	roadmap.TotalTimeEstimate = total
	roadmap.CreatedAt = time.Now().UTC()
	roadmap.UpdatedAt = roadmap.CreatedAt

	if err := s.roadmapRepo.Create(&roadmap); err != nil {
		return models.Roadmap{}, err
	}

	fmt.Printf("✅ Roadmap %s created: %d modules, %s\n", roadmap.ID, len(roadmap.Modules), roadmap.TotalTimeEstimate)

	return roadmap, nil
}

func (s *RoadmapService) GetRoadmap(id string) (models.Roadmap, error) {
	return s.roadmapRepo.GetRoadmap(id)
}

func (s *RoadmapService) GetRoadmapsByUser(userID string) ([]models.Roadmap, error) {
	return s.roadmapRepo.GetRoadmapsByUser(userID)
}

func (s *RoadmapService) UpdateInfo(id, title, description string) (models.Roadmap, error) {
	if err := s.roadmapRepo.UpdateInfo(id, title, description); err != nil {
		return models.Roadmap{}, err
	}
	return s.roadmapRepo.GetRoadmap(id)
}

func (s *RoadmapService) DeleteRoadmap(id string) error {
	return s.roadmapRepo.Delete(id)
}

// Share grants a collaborator read/write access; the roadmap then shows up in
// their list. Sharing twice is a no-op.
func (s *RoadmapService) Share(roadmapID, userID string) error {
	if _, err := s.roadmapRepo.GetRoadmap(roadmapID); err != nil {
		return err
	}
	return s.collabRepo.Share(roadmapID, userID)
}

func (s *RoadmapService) GetCollaborators(roadmapID string) ([]string, error) {
	if _, err := s.roadmapRepo.GetRoadmap(roadmapID); err != nil {
		return nil, err
	}
	return s.collabRepo.GetCollaborators(roadmapID)
}
