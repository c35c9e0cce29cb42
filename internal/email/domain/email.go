package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ActionItem is one extracted task attached to an email.
type ActionItem struct {
	Task     string  `json:"task"`
	Deadline *string `json:"deadline"`
	Priority string  `json:"priority,omitempty"`
}

// ActionItems is stored as a JSONB column.
type ActionItems []ActionItem

func (a ActionItems) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *ActionItems) Scan(value interface{}) error {
	if value == nil {
		*a = ActionItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported action items column type")
	}
}

// Metadata is a free-form JSONB column.
type Metadata map[string]interface{}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported metadata column type")
	}
}

type Email struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id,omitempty" gorm:"index"` // empty on legacy/public records

	Sender    string    `json:"sender"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`

	Category string `json:"category"`
	Priority string `json:"priority" gorm:"default:medium"`

	IsRead     bool `json:"is_read" gorm:"default:false"`
	IsArchived bool `json:"is_archived" gorm:"default:false"`
	IsStarred  bool `json:"is_starred" gorm:"default:false"`

	ActionItems ActionItems `json:"action_items" gorm:"type:jsonb"`
	Summary     string      `json:"summary" gorm:"type:text"`
	Metadata    Metadata    `json:"metadata" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EmailDraft struct {
	ID      string   `json:"id" gorm:"primaryKey"`
	UserID  string   `json:"user_id,omitempty" gorm:"index"`
	To      string   `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body" gorm:"type:text"`
	Metadata Metadata `json:"metadata" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
