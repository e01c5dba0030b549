package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

var ErrRoadmapNotFound = errors.New("roadmap not found")

type RoadmapRepository struct {
	db *sql.DB
}

func NewRoadmapRepository(db *sql.DB) *RoadmapRepository {
	return &RoadmapRepository{db: db}
}

func (r *RoadmapRepository) Create(roadmap *models.Roadmap) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error trying to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO roadmaps (id, user_id, title, description, total_time_estimate)
        VALUES (?, ?, ?, ?, ?)
	`

	_, err = tx.Exec(query,
		roadmap.ID,
		roadmap.UserID,
		roadmap.Title,
		roadmap.Description,
		roadmap.TotalTimeEstimate,
	)
	if err != nil {
		return fmt.Errorf("Error trying to create the roadmap: %w", err)
	}

	for mi, module := range roadmap.Modules {
		_, err = tx.Exec(
			`INSERT INTO modules (id, roadmap_id, position, title, description) VALUES (?, ?, ?, ?, ?)`,
			module.ID, roadmap.ID, mi, module.Title, module.Description,
		)
		if err != nil {
			return fmt.Errorf("Error trying to create module %s: %w", module.Title, err)
		}

		for ti, task := range module.Tasks {
			_, err = tx.Exec(
				`INSERT INTO tasks (id, module_id, position, title, description, start_date, end_date, estimated_minutes, priority, is_completed, completed_at)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				task.ID, module.ID, ti, task.Title, task.Description,
				task.StartDate, task.EndDate, task.EstimatedMinutes,
				string(task.Priority), task.IsCompleted, task.CompletedAt,
			)
			if err != nil {
				return fmt.Errorf("Error trying to create task %s: %w", task.Title, err)
			}

			for si, subtask := range task.SubTasks {
				_, err = tx.Exec(
					`INSERT INTO subtasks (id, task_id, position, title, is_completed) VALUES (?, ?, ?, ?, ?)`,
					subtask.ID, task.ID, si, subtask.Title, subtask.IsCompleted,
				)
				if err != nil {
					return fmt.Errorf("Error trying to create subtask %s: %w", subtask.Title, err)
				}
			}

			for ri, resource := range task.Resources {
				_, err = tx.Exec(
					`INSERT INTO resources (task_id, position, title, url, type) VALUES (?, ?, ?, ?, ?)`,
					task.ID, ri, resource.Title, resource.URL, resource.Type,
				)
				if err != nil {
					return fmt.Errorf("Error trying to create resource %s: %w", resource.Title, err)
				}
			}
		}
	}

	return tx.Commit()
}

func (r *RoadmapRepository) GetRoadmap(id string) (models.Roadmap, error) {
	query := `
		SELECT id, user_id, title, description, total_time_estimate, created_at, updated_at
		FROM roadmaps WHERE id = ?
	`

	var roadmap models.Roadmap
	err := r.db.QueryRow(query, id).Scan(
		&roadmap.ID,
		&roadmap.UserID,
		&roadmap.Title,
		&roadmap.Description,
		&roadmap.TotalTimeEstimate,
		&roadmap.CreatedAt,
		&roadmap.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Roadmap{}, ErrRoadmapNotFound
	}
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("Error trying to get roadmap: %w", err)
	}

	roadmap.Modules, err = r.loadModules(roadmap.ID)
	if err != nil {
		return models.Roadmap{}, err
	}

	return roadmap, nil
}

// GetRoadmapsByUser returns the roadmaps the user owns plus the ones shared
// with them, each fully loaded.
func (r *RoadmapRepository) GetRoadmapsByUser(userID string) ([]models.Roadmap, error) {
	query := `
		SELECT DISTINCT r.id FROM roadmaps r
		LEFT JOIN roadmap_collaborators c ON c.roadmap_id = r.id
		WHERE r.user_id = ? OR c.user_id = ?
		ORDER BY r.created_at
	`
	rows, err := r.db.Query(query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get roadmaps: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var roadmaps []models.Roadmap
	for _, id := range ids {
		roadmap, err := r.GetRoadmap(id)
		if err != nil {
			return nil, err
		}
		roadmaps = append(roadmaps, roadmap)
	}

	return roadmaps, nil
}

func (r *RoadmapRepository) UpdateInfo(id, title, description string) error {
	query := `UPDATE roadmaps SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	result, err := r.db.Exec(query, title, description, id)
	if err != nil {
		return fmt.Errorf("Error trying to update roadmap: %w", err)
	}
	return checkRoadmapExisted(result)
}

func (r *RoadmapRepository) UpdateTotalTime(id, totalTimeEstimate string) error {
	query := `UPDATE roadmaps SET total_time_estimate = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	result, err := r.db.Exec(query, totalTimeEstimate, id)
	if err != nil {
		return fmt.Errorf("Error trying to update total time estimate: %w", err)
	}
	return checkRoadmapExisted(result)
}

func (r *RoadmapRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error trying to begin transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM resources WHERE task_id IN (
			SELECT t.id FROM tasks t JOIN modules m ON t.module_id = m.id WHERE m.roadmap_id = ?)`,
		`DELETE FROM subtasks WHERE task_id IN (
			SELECT t.id FROM tasks t JOIN modules m ON t.module_id = m.id WHERE m.roadmap_id = ?)`,
		`DELETE FROM tasks WHERE module_id IN (SELECT id FROM modules WHERE roadmap_id = ?)`,
		`DELETE FROM modules WHERE roadmap_id = ?`,
		`DELETE FROM roadmap_collaborators WHERE roadmap_id = ?`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(statement, id); err != nil {
			return fmt.Errorf("Error trying to delete roadmap children: %w", err)
		}
	}

	result, err := tx.Exec(`DELETE FROM roadmaps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Error trying to delete roadmap: %w", err)
	}
	if err := checkRoadmapExisted(result); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RoadmapRepository) loadModules(roadmapID string) ([]models.Module, error) {
	query := `SELECT id, title, description FROM modules WHERE roadmap_id = ? ORDER BY position`
	rows, err := r.db.Query(query, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get modules: %w", err)
	}

	var modules []models.Module
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.Title, &m.Description); err != nil {
			rows.Close()
			return nil, err
		}
		modules = append(modules, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range modules {
		modules[i].Tasks, err = r.loadTasks(modules[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return modules, nil
}

func (r *RoadmapRepository) loadTasks(moduleID string) ([]models.Task, error) {
	query := `
		SELECT id, title, description, start_date, end_date, estimated_minutes, priority, is_completed, completed_at
		FROM tasks WHERE module_id = ? ORDER BY position
	`
	rows, err := r.db.Query(query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get tasks: %w", err)
	}

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var priority string
		var completedAt sql.NullTime
		err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.StartDate,
			&t.EndDate,
			&t.EstimatedMinutes,
			&priority,
			&t.IsCompleted,
			&completedAt,
		)
		if err != nil {
			rows.Close()
			return nil, err
		}
		t.Priority = models.Priority(priority)
		if completedAt.Valid {
			t.CompletedAt = &completedAt.Time
		}
		tasks = append(tasks, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].SubTasks, err = r.loadSubTasks(tasks[i].ID); err != nil {
			return nil, err
		}
		if tasks[i].Resources, err = r.loadResources(tasks[i].ID); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

func (r *RoadmapRepository) loadSubTasks(taskID string) ([]models.SubTask, error) {
	query := `SELECT id, title, is_completed FROM subtasks WHERE task_id = ? ORDER BY position`
	rows, err := r.db.Query(query, taskID)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get subtasks: %w", err)
	}
	defer rows.Close()

	var subtasks []models.SubTask
	for rows.Next() {
		var s models.SubTask
		if err := rows.Scan(&s.ID, &s.Title, &s.IsCompleted); err != nil {
			return nil, err
		}
		subtasks = append(subtasks, s)
	}
	return subtasks, rows.Err()
}

func (r *RoadmapRepository) loadResources(taskID string) ([]models.Resource, error) {
	query := `SELECT title, url, type FROM resources WHERE task_id = ? ORDER BY position`
	rows, err := r.db.Query(query, taskID)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(&res.Title, &res.URL, &res.Type); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func checkRoadmapExisted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoadmapNotFound
	}
	return nil
}
