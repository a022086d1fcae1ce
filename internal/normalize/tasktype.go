package normalize

import (
	"strings"

	"github.com/pockettasks/remind/internal/types"
)

// Keyword priority is fixed: the first matching keyword wins, so a title
// like "pay before the deadline" classifies as a bill, not a deadline.
var typeKeywords = []struct {
	keyword  string
	taskType types.TaskType
}{
	{"bill", types.TaskBill},
	{"payment", types.TaskBill},
	{"pay", types.TaskBill},
	{"meeting", types.TaskMeeting},
	{"meet", types.TaskMeeting},
	{"deadline", types.TaskDeadline},
	{"due", types.TaskDeadline},
	{"appointment", types.TaskAppointment},
	{"appt", types.TaskAppointment},
	{"reminder", types.TaskReminder},
}

// InferTaskType classifies a candidate by its title when the model did
// not supply an explicit type.
func InferTaskType(title string) types.TaskType {
	lower := strings.ToLower(title)
	for _, entry := range typeKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.taskType
		}
	}
	return types.TaskTask
}
