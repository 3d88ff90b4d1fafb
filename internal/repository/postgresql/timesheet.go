package postgresql

import (
	"context"

	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	id, employee_code, week_start::text, days, status, submitted, submitted_at,
	turnaround_credits, created_at, updated_at
`

func scanTimesheet(row interface{ Scan(dest ...any) error }) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := row.Scan(
		&ts.ID,
		&ts.EmployeeCode,
		&ts.WeekStart,
		&ts.Days,
		&ts.Status,
		&ts.Submitted,
		&ts.SubmittedAt,
		&ts.TurnaroundCredits,
		&ts.CreatedAt,
		&ts.UpdatedAt,
	)
	return ts, err
}

// GetByKey implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByKey(ctx context.Context, employeeCode, weekStart string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE employee_code = $1 AND week_start = $2
	`

	return scanTimesheet(q.QueryRow(ctx, query, employeeCode, weekStart))
}

// GetByWeekStarts implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByWeekStarts(ctx context.Context, employeeCode string, weekStarts []string) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets
		WHERE employee_code = $1 AND week_start = ANY($2::date[])
		ORDER BY week_start
	`

	rows, err := q.Query(ctx, query, employeeCode, weekStarts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, ts)
	}
	return timesheets, rows.Err()
}

// GetStatusForUpdate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetStatusForUpdate(ctx context.Context, employeeCode, weekStart string) (timesheet.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status
		FROM timesheets
		WHERE employee_code = $1 AND week_start = $2
		FOR UPDATE
	`

	var status timesheet.Status
	err := q.QueryRow(ctx, query, employeeCode, weekStart).Scan(&status)
	return status, err
}

// Upsert implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Upsert(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			id, employee_code, week_start, days, status, submitted, submitted_at,
			turnaround_credits, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, NOW(), NOW()
		)
		ON CONFLICT (employee_code, week_start) DO UPDATE SET
			days = EXCLUDED.days,
			status = EXCLUDED.status,
			submitted = EXCLUDED.submitted,
			submitted_at = COALESCE(EXCLUDED.submitted_at, timesheets.submitted_at),
			turnaround_credits = EXCLUDED.turnaround_credits,
			updated_at = NOW()
		RETURNING ` + timesheetColumns + `
	`

	return scanTimesheet(q.QueryRow(ctx, query,
		ts.EmployeeCode, ts.WeekStart, ts.Days, ts.Status, ts.Submitted, ts.SubmittedAt,
		ts.TurnaroundCredits,
	))
}
