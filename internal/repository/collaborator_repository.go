package repository

import (
	"database/sql"
	"fmt"
)

type CollaboratorRepository struct {
	db *sql.DB
}

func NewCollaboratorRepository(db *sql.DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

func (r *CollaboratorRepository) Share(roadmapID, userID string) error {
	query := `
		INSERT OR IGNORE INTO roadmap_collaborators (roadmap_id, user_id)
		VALUES (?, ?)
	`
	_, err := r.db.Exec(query, roadmapID, userID)
	if err != nil {
		return fmt.Errorf("Error trying to share roadmap: %w", err)
	}
	return nil
}

func (r *CollaboratorRepository) Unshare(roadmapID, userID string) error {
	query := `DELETE FROM roadmap_collaborators WHERE roadmap_id = ? AND user_id = ?`
	_, err := r.db.Exec(query, roadmapID, userID)
	if err != nil {
		return fmt.Errorf("Error trying to unshare roadmap: %w", err)
	}
	return nil
}

func (r *CollaboratorRepository) GetCollaborators(roadmapID string) ([]string, error) {
	query := `SELECT user_id FROM roadmap_collaborators WHERE roadmap_id = ? ORDER BY shared_at`
	rows, err := r.db.Query(query, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get collaborators: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, rows.Err()
}
