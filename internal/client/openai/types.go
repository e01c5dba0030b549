package openai

// Wire shape the model is asked to produce. Kept separate from
// internal/models so prompt-schema drift stays contained here.
type generatedRoadmap struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Modules     []generatedModule `json:"modules"`
}

type generatedModule struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tasks       []generatedTask `json:"tasks"`
}

type generatedTask struct {
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	StartDate        string              `json:"start_date"`
	EndDate          string              `json:"end_date"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
	Priority         string              `json:"priority"`
	SubTasks         []string            `json:"subtasks"`
	Resources        []generatedResource `json:"resources"`
}

type generatedResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}
