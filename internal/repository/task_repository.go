package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// SaveTaskDates writes back the start/end dates of every task in the given
// modules in one transaction. Used after a reschedule cascade, where an
// unknown subset of tasks changed.
func (r *TaskRepository) SaveTaskDates(modules []models.Module) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error trying to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tasks SET start_date = ?, end_date = ? WHERE id = ?`
	for _, module := range modules {
		for _, task := range module.Tasks {
			if _, err := tx.Exec(query, task.StartDate, task.EndDate, task.ID); err != nil {
				return fmt.Errorf("Error trying to update task dates %s: %w", task.ID, err)
			}
		}
	}

	return tx.Commit()
}

func (r *TaskRepository) UpdateDates(taskID, startDate, endDate string) error {
	query := `UPDATE tasks SET start_date = ?, end_date = ? WHERE id = ?`
	result, err := r.db.Exec(query, startDate, endDate, taskID)
	if err != nil {
		return fmt.Errorf("Error trying to update task dates: %w", err)
	}
	return checkTaskExisted(result)
}

func (r *TaskRepository) UpdateCompletion(taskID string, isCompleted bool, completedAt *time.Time) error {
	query := `UPDATE tasks SET is_completed = ?, completed_at = ? WHERE id = ?`
	result, err := r.db.Exec(query, isCompleted, completedAt, taskID)
	if err != nil {
		return fmt.Errorf("Error trying to update task completion: %w", err)
	}
	return checkTaskExisted(result)
}

func checkTaskExisted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
