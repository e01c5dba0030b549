package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRoadmap(id, userID string) models.Roadmap {
	return models.Roadmap{
		ID:                id,
		UserID:            userID,
		Title:             "Learn Go",
		Description:       "From zero to deployed service",
		TotalTimeEstimate: "6 days",
		Modules: []models.Module{
			{
				ID:          id + "-m1",
				Title:       "Basics",
				Description: "Syntax and tooling",
				Tasks: []models.Task{
					{
						ID:               id + "-t1",
						Title:            "Install and hello world",
						StartDate:        "2024-01-01",
						EndDate:          "2024-01-02",
						EstimatedMinutes: 90,
						Priority:         models.PriorityHigh,
						SubTasks: []models.SubTask{
							{ID: id + "-s1", Title: "Install toolchain"},
							{ID: id + "-s2", Title: "Run gofmt"},
						},
						Resources: []models.Resource{
							{Title: "Tour of Go", URL: "https://go.dev/tour", Type: "link"},
						},
					},
					{
						ID:        id + "-t2",
						Title:     "Structs and interfaces",
						StartDate: "2024-01-03",
						Priority:  models.PriorityMedium,
					},
				},
			},
			{
				ID:    id + "-m2",
				Title: "Concurrency",
				Tasks: []models.Task{
					{
						ID:        id + "-t3",
						Title:     "Goroutines",
						StartDate: "2024-01-05",
						EndDate:   "2024-01-06",
						Priority:  models.PriorityLow,
					},
				},
			},
		},
	}
}

func TestRoadmapRepository_CreateAndGet(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))

	original := sampleRoadmap("r1", "user-1")
	require.NoError(t, repo.Create(&original))

	got, err := repo.GetRoadmap("r1")
	require.NoError(t, err)

	assert.Equal(t, "Learn Go", got.Title)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "6 days", got.TotalTimeEstimate)
	assert.False(t, got.CreatedAt.IsZero())

	require.Len(t, got.Modules, 2)
	assert.Equal(t, "Basics", got.Modules[0].Title)
	assert.Equal(t, "Concurrency", got.Modules[1].Title)

	require.Len(t, got.Modules[0].Tasks, 2)
	first := got.Modules[0].Tasks[0]
	assert.Equal(t, "2024-01-01", first.StartDate)
	assert.Equal(t, "2024-01-02", first.EndDate)
	assert.Equal(t, 90, first.EstimatedMinutes)
	assert.Equal(t, models.PriorityHigh, first.Priority)
	assert.False(t, first.IsCompleted)
	assert.Nil(t, first.CompletedAt)

	require.Len(t, first.SubTasks, 2)
	assert.Equal(t, "Install toolchain", first.SubTasks[0].Title)
	require.Len(t, first.Resources, 1)
	assert.Equal(t, "https://go.dev/tour", first.Resources[0].URL)

	second := got.Modules[0].Tasks[1]
	assert.Equal(t, "2024-01-03", second.StartDate)
	assert.Empty(t, second.EndDate)
}

func TestRoadmapRepository_GetMissing(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))

	_, err := repo.GetRoadmap("nope")
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
}

func TestRoadmapRepository_UpdateInfo(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))
	roadmap := sampleRoadmap("r1", "user-1")
	require.NoError(t, repo.Create(&roadmap))

	require.NoError(t, repo.UpdateInfo("r1", "New title", "New description"))

	got, err := repo.GetRoadmap("r1")
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "New description", got.Description)

	assert.ErrorIs(t, repo.UpdateInfo("nope", "x", "y"), ErrRoadmapNotFound)
}

func TestRoadmapRepository_UpdateTotalTime(t *testing.T) {
	repo := NewRoadmapRepository(newTestDB(t))
	roadmap := sampleRoadmap("r1", "user-1")
	require.NoError(t, repo.Create(&roadmap))

	require.NoError(t, repo.UpdateTotalTime("r1", "8 days"))

	got, err := repo.GetRoadmap("r1")
	require.NoError(t, err)
	assert.Equal(t, "8 days", got.TotalTimeEstimate)
}

func TestRoadmapRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoadmapRepository(db)
	roadmap := sampleRoadmap("r1", "user-1")
	require.NoError(t, repo.Create(&roadmap))

	require.NoError(t, repo.Delete("r1"))

	_, err := repo.GetRoadmap("r1")
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
	assert.ErrorIs(t, repo.Delete("r1"), ErrRoadmapNotFound)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Zero(t, count, "tasks should be deleted with the roadmap")
}

func TestRoadmapRepository_GetRoadmapsByUser_IncludesShared(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoadmapRepository(db)
	collabRepo := NewCollaboratorRepository(db)

	owned := sampleRoadmap("r1", "alice")
	foreign := sampleRoadmap("r2", "bob")
	require.NoError(t, repo.Create(&owned))
	require.NoError(t, repo.Create(&foreign))

	roadmaps, err := repo.GetRoadmapsByUser("alice")
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)
	assert.Equal(t, "r1", roadmaps[0].ID)

	require.NoError(t, collabRepo.Share("r2", "alice"))
	require.NoError(t, collabRepo.Share("r2", "alice"), "sharing twice is a no-op")

	roadmaps, err = repo.GetRoadmapsByUser("alice")
	require.NoError(t, err)
	assert.Len(t, roadmaps, 2)

	collaborators, err := collabRepo.GetCollaborators("r2")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, collaborators)
}

func TestTaskRepository_SaveTaskDates(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoadmapRepository(db)
	taskRepo := NewTaskRepository(db)

	roadmap := sampleRoadmap("r1", "user-1")
	require.NoError(t, repo.Create(&roadmap))

	roadmap.Modules[0].Tasks[0].StartDate = "2024-02-01"
	roadmap.Modules[0].Tasks[0].EndDate = "2024-02-02"
	roadmap.Modules[1].Tasks[0].StartDate = "2024-02-05"
	require.NoError(t, taskRepo.SaveTaskDates(roadmap.Modules))

	got, err := repo.GetRoadmap("r1")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", got.Modules[0].Tasks[0].StartDate)
	assert.Equal(t, "2024-02-02", got.Modules[0].Tasks[0].EndDate)
	assert.Equal(t, "2024-02-05", got.Modules[1].Tasks[0].StartDate)
}

func TestTaskRepository_UpdateCompletion(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoadmapRepository(db)
	taskRepo := NewTaskRepository(db)

	roadmap := sampleRoadmap("r1", "user-1")
	require.NoError(t, repo.Create(&roadmap))

	completedAt := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, taskRepo.UpdateCompletion("r1-t1", true, &completedAt))

	got, err := repo.GetRoadmap("r1")
	require.NoError(t, err)
	task := got.Modules[0].Tasks[0]
	assert.True(t, task.IsCompleted)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(completedAt))

	require.NoError(t, taskRepo.UpdateCompletion("r1-t1", false, nil))
	got, err = repo.GetRoadmap("r1")
	require.NoError(t, err)
	assert.False(t, got.Modules[0].Tasks[0].IsCompleted)
	assert.Nil(t, got.Modules[0].Tasks[0].CompletedAt)

	assert.ErrorIs(t, taskRepo.UpdateCompletion("missing", true, nil), ErrTaskNotFound)
}
