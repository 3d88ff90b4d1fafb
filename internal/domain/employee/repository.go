package employee

import (
	"context"
)

// EmployeeRepository defines data access for employee records.
type EmployeeRepository interface {
	// GetByCode retrieves an employee by employee code
	GetByCode(ctx context.Context, code string) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)
}
