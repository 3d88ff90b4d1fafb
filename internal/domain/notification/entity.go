package notification

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Data is the free-form payload attached to a notification, stored as JSONB.
type Data map[string]string

// Value implements driver.Valuer for database storage
func (d Data) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for database retrieval
func (d *Data) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Data: invalid type")
	}

	return json.Unmarshal(bytes, d)
}

// Notification is one in-app message for an employee. IdempotencyKey makes
// delivery exactly-once per event: re-sending the same key is a no-op.
type Notification struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`

	Title string `json:"title"`
	Body  string `json:"body"`
	Data  Data   `json:"data,omitempty"`

	IdempotencyKey string `json:"-"`

	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
