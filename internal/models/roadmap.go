package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Roadmap struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	TotalTimeEstimate string    `json:"total_time_estimate"`
	Modules           []Module  `json:"modules"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tasks       []Task `json:"tasks"`
}

// Task dates are calendar dates in YYYY-MM-DD form; an empty string means unset.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Priority         Priority   `json:"priority"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	SubTasks         []SubTask  `json:"subtasks,omitempty"`
	Resources        []Resource `json:"resources,omitempty"`
}

type SubTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}
