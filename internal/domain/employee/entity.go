package employee

import (
	"time"
)

type Employee struct {
	ID      string
	Code    string
	Name    string
	Email   *string
	PINHash *string

	// Region selects the bank-holiday calendar, e.g. "england-and-wales".
	Region string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
