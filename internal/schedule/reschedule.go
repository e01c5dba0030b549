package schedule

import (
	"fmt"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

// RescheduleRoadmap moves the task identified by taskID to newStartDate and
// shifts every task after it by the same delta, where "after" follows the
// stored order: modules first, tasks within a module second. Tasks before the
// moved one are never touched, whatever their dates. The total-time estimate
// is refreshed after a cascade.
//
// The input roadmap is not mutated; the updated roadmap is a deep copy.
func RescheduleRoadmap(roadmap models.Roadmap, taskID string, newStartDate string) (models.Roadmap, error) {
	updated := cloneRoadmap(roadmap)

	moduleIdx, taskIdx := locateTask(updated.Modules, taskID)
	if moduleIdx < 0 {
		return models.Roadmap{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	moved := &updated.Modules[moduleIdx].Tasks[taskIdx]

	// Trivial single-field edit: no previous date to shift from, the date is
	// being cleared, or nothing changed. No cascade, no duration recompute.
	if moved.StartDate == "" || newStartDate == "" || moved.StartDate == newStartDate {
		moved.StartDate = newStartDate
		return updated, nil
	}

	oldStart, err := parseDate(moved.StartDate)
	if err != nil {
		return models.Roadmap{}, err
	}
	newStart, err := parseDate(newStartDate)
	if err != nil {
		return models.Roadmap{}, err
	}
	delta := newStart.Sub(oldStart)

	moved.StartDate = newStartDate
	if moved.EndDate != "" {
		if moved.EndDate, err = AddTime(moved.EndDate, delta); err != nil {
			return models.Roadmap{}, err
		}
	}

	for mi := moduleIdx; mi < len(updated.Modules); mi++ {
		tasks := updated.Modules[mi].Tasks
		ti := 0
		if mi == moduleIdx {
			ti = taskIdx + 1
		}
		for ; ti < len(tasks); ti++ {
			task := &tasks[ti]
			if task.StartDate == "" {
				// Nothing to shift.
				continue
			}
			if task.StartDate, err = AddTime(task.StartDate, delta); err != nil {
				return models.Roadmap{}, err
			}
			if task.EndDate != "" {
				if task.EndDate, err = AddTime(task.EndDate, delta); err != nil {
					return models.Roadmap{}, err
				}
			}
		}
	}

	total, err := RecalculateTotalTime(updated.Modules)
	if err != nil {
		return models.Roadmap{}, err
	}
	updated.TotalTimeEstimate = total

	return updated, nil
}

func locateTask(modules []models.Module, taskID string) (moduleIdx, taskIdx int) {
	for mi, module := range modules {
		for ti, task := range module.Tasks {
			if task.ID == taskID {
				return mi, ti
			}
		}
	}
	return -1, -1
}

func cloneRoadmap(roadmap models.Roadmap) models.Roadmap {
	cloned := roadmap
	cloned.Modules = make([]models.Module, len(roadmap.Modules))
	for mi, module := range roadmap.Modules {
		clonedModule := module
		clonedModule.Tasks = make([]models.Task, len(module.Tasks))
		for ti, task := range module.Tasks {
			clonedTask := task
			if task.SubTasks != nil {
				clonedTask.SubTasks = append([]models.SubTask(nil), task.SubTasks...)
			}
			if task.Resources != nil {
				clonedTask.Resources = append([]models.Resource(nil), task.Resources...)
			}
			if task.CompletedAt != nil {
				completedAt := *task.CompletedAt
				clonedTask.CompletedAt = &completedAt
			}
			clonedModule.Tasks[ti] = clonedTask
		}
		cloned.Modules[mi] = clonedModule
	}
	return cloned
}
