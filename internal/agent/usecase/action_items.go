package usecase

import (
	"encoding/json"
	"strings"

	emaildomain "mailagent-backend/internal/email/domain"
)

// ParseActionItems turns a model extraction answer into action items. It
// accepts an object carrying a "tasks" array, a bare array, or any other
// text, which is wrapped as a single undated item. It never fails.
func ParseActionItems(raw string) emaildomain.ActionItems {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return emaildomain.ActionItems{}
	}

	switch trimmed[0] {
	case '{':
		var wrapper struct {
			Tasks emaildomain.ActionItems `json:"tasks"`
		}
		if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && wrapper.Tasks != nil {
			return wrapper.Tasks
		}
	case '[':
		var items emaildomain.ActionItems
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return items
		}
	}

	return emaildomain.ActionItems{{Task: trimmed, Deadline: nil}}
}
