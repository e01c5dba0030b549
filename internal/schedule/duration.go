package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

// NotScheduled is the summary for a roadmap with no dated task.
const NotScheduled = "Not scheduled"

// RecalculateTotalTime derives the roadmap-wide duration summary from the
// minimum start date and maximum end date across every scheduled task. A task
// without an end date counts as ending on its start date. The result depends
// only on the set of dates, not on module or task order.
func RecalculateTotalTime(modules []models.Module) (string, error) {
	var minDate, maxDate time.Time
	scheduled := false

	for _, module := range modules {
		for _, task := range module.Tasks {
			if task.StartDate == "" {
				continue
			}
			start, err := parseDate(task.StartDate)
			if err != nil {
				return "", err
			}
			end := start
			if task.EndDate != "" {
				if end, err = parseDate(task.EndDate); err != nil {
					return "", err
				}
			}
			if !scheduled || start.Before(minDate) {
				minDate = start
			}
			if !scheduled || end.After(maxDate) {
				maxDate = end
			}
			scheduled = true
		}
	}

	if !scheduled {
		return NotScheduled, nil
	}

	// +1 makes the span inclusive of the start day.
	diffDays := int(math.Ceil(math.Abs(maxDate.Sub(minDate).Hours()/24))) + 1
	if diffDays > 30 {
		weeks := int(math.Round(float64(diffDays) / 7))
		return fmt.Sprintf("%d weeks", weeks), nil
	}
	return fmt.Sprintf("%d days", diffDays), nil
}
