package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IIDOUY/AI-Study-Roadmap/internal/models"
)

func modulesWithDates(dates ...[2]string) []models.Module {
	tasks := make([]models.Task, len(dates))
	for i, d := range dates {
		tasks[i] = models.Task{ID: d[0] + d[1], StartDate: d[0], EndDate: d[1]}
	}
	return []models.Module{{ID: "m1", Tasks: tasks}}
}

func TestRecalculateTotalTime_NoScheduledTasks(t *testing.T) {
	got, err := RecalculateTotalTime(modulesWithDates([2]string{"", ""}, [2]string{"", ""}))
	require.NoError(t, err)
	assert.Equal(t, NotScheduled, got)

	got, err = RecalculateTotalTime(nil)
	require.NoError(t, err)
	assert.Equal(t, NotScheduled, got)
}

func TestRecalculateTotalTime_Days(t *testing.T) {
	tests := []struct {
		name  string
		dates [][2]string
		want  string
	}{
		{
			"single day task",
			[][2]string{{"2024-01-01", ""}},
			"1 days",
		},
		{
			"start date fallback for missing end date",
			[][2]string{{"2024-01-01", ""}, {"2024-01-05", ""}},
			"5 days",
		},
		{
			"end date extends the span",
			[][2]string{{"2024-01-01", "2024-01-10"}, {"2024-01-03", ""}},
			"10 days",
		},
		{
			"thirty days stays in days",
			[][2]string{{"2024-01-01", "2024-01-30"}},
			"30 days",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecalculateTotalTime(modulesWithDates(tt.dates...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecalculateTotalTime_Weeks(t *testing.T) {
	// 2024-01-01 .. 2024-02-04 is 35 inclusive days -> 5 weeks.
	got, err := RecalculateTotalTime(modulesWithDates([2]string{"2024-01-01", "2024-02-04"}))
	require.NoError(t, err)
	assert.Equal(t, "5 weeks", got)

	// 31 inclusive days rounds to 4 weeks.
	got, err = RecalculateTotalTime(modulesWithDates([2]string{"2024-01-01", "2024-01-31"}))
	require.NoError(t, err)
	assert.Equal(t, "4 weeks", got)
}

func TestRecalculateTotalTime_OrderInvariant(t *testing.T) {
	forward := []models.Module{
		{ID: "m1", Tasks: []models.Task{{ID: "a", StartDate: "2024-01-01"}, {ID: "b", StartDate: "2024-01-04"}}},
		{ID: "m2", Tasks: []models.Task{{ID: "c", StartDate: "2024-01-08", EndDate: "2024-01-10"}}},
	}
	shuffled := []models.Module{
		{ID: "m2", Tasks: []models.Task{{ID: "c", StartDate: "2024-01-08", EndDate: "2024-01-10"}}},
		{ID: "m1", Tasks: []models.Task{{ID: "b", StartDate: "2024-01-04"}, {ID: "a", StartDate: "2024-01-01"}}},
	}

	a, err := RecalculateTotalTime(forward)
	require.NoError(t, err)
	b, err := RecalculateTotalTime(shuffled)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "10 days", a)
}

func TestRecalculateTotalTime_InvalidStoredDate(t *testing.T) {
	_, err := RecalculateTotalTime(modulesWithDates([2]string{"garbage", ""}))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = RecalculateTotalTime(modulesWithDates([2]string{"2024-01-01", "garbage"}))
	assert.ErrorIs(t, err, ErrInvalidDate)
}
