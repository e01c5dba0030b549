package client

import (
	"context"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

// RoadmapGenerator turns raw study material into a structured roadmap draft.
// Implementations return drafts without ids; the service assigns identity.
type RoadmapGenerator interface {
	GenerateRoadmap(ctx context.Context, content string) (models.Roadmap, error)
}
