package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

const systemPrompt = `You are a study-plan assistant. Given study material, produce a JSON object with this exact shape:
{"title": string, "description": string, "modules": [{"title": string, "description": string, "tasks": [{"title": string, "description": string, "start_date": "YYYY-MM-DD", "end_date": "YYYY-MM-DD", "estimated_minutes": number, "priority": "High"|"Medium"|"Low", "subtasks": [string], "resources": [{"title": string, "url": string, "type": string}]}]}]}
Order modules and tasks chronologically. Dates may be empty strings when the material gives no schedule. Respond with JSON only.`

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) GenerateRoadmap(ctx context.Context, content string) (models.Roadmap, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("generate roadmap: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Roadmap{}, fmt.Errorf("generate roadmap: model returned no choices")
	}

	var generated generatedRoadmap
	raw := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &generated); err != nil {
		return models.Roadmap{}, fmt.Errorf("parse generated roadmap: %w", err)
	}

	return toRoadmap(generated), nil
}

// Some models wrap JSON answers in a markdown fence even when asked not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func toRoadmap(generated generatedRoadmap) models.Roadmap {
	roadmap := models.Roadmap{
		Title:       generated.Title,
		Description: generated.Description,
	}
	for _, gm := range generated.Modules {
		module := models.Module{
			Title:       gm.Title,
			Description: gm.Description,
		}
		for _, gt := range gm.Tasks {
			task := models.Task{
				Title:            gt.Title,
				Description:      gt.Description,
				StartDate:        normalizeDate(gt.StartDate),
				EndDate:          normalizeDate(gt.EndDate),
				EstimatedMinutes: gt.EstimatedMinutes,
				Priority:         normalizePriority(gt.Priority),
			}
			for _, title := range gt.SubTasks {
				task.SubTasks = append(task.SubTasks, models.SubTask{Title: title})
			}
			for _, gr := range gt.Resources {
				task.Resources = append(task.Resources, models.Resource{
					Title: gr.Title,
					URL:   gr.URL,
					Type:  gr.Type,
				})
			}
			module.Tasks = append(module.Tasks, task)
		}
		roadmap.Modules = append(roadmap.Modules, module)
	}
	return roadmap
}

// Model output is untrusted; a date that doesn't parse is dropped rather
// than stored, so date arithmetic downstream never sees a malformed value.
func normalizeDate(date string) string {
	if date == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ""
	}
	return date
}

func normalizePriority(priority string) models.Priority {
	switch models.Priority(priority) {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return models.Priority(priority)
	}
	return models.PriorityMedium
}
