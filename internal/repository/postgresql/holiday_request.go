package postgresql

import (
	"context"
	"fmt"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
)

type holidayRequestRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRequestRepository(db *database.DB) holiday.HolidayRequestRepository {
	return &holidayRequestRepositoryImpl{db: db}
}

const holidayRequestColumns = `
	id, employee_code, start_date::text, end_date::text, half_day, half_day_period,
	paid_status, leave_type, reason, status, approved_by, approved_at,
	rejection_reason, created_at, updated_at
`

func scanHolidayRequest(row interface{ Scan(dest ...any) error }) (holiday.HolidayRequest, error) {
	var hr holiday.HolidayRequest
	err := row.Scan(
		&hr.ID,
		&hr.EmployeeCode,
		&hr.StartDate,
		&hr.EndDate,
		&hr.HalfDay,
		&hr.HalfDayPeriod,
		&hr.PaidStatus,
		&hr.LeaveType,
		&hr.Reason,
		&hr.Status,
		&hr.ApprovedBy,
		&hr.ApprovedAt,
		&hr.RejectionReason,
		&hr.CreatedAt,
		&hr.UpdatedAt,
	)
	return hr, err
}

// Create implements holiday.HolidayRequestRepository.
func (r *holidayRequestRepositoryImpl) Create(ctx context.Context, request holiday.HolidayRequest) (holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (
			id, employee_code, start_date, end_date, half_day, half_day_period,
			paid_status, leave_type, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING ` + holidayRequestColumns + `
	`

	return scanHolidayRequest(q.QueryRow(ctx, query,
		request.EmployeeCode, request.StartDate, request.EndDate, request.HalfDay, request.HalfDayPeriod,
		request.PaidStatus, request.LeaveType, request.Reason, request.Status,
	))
}

// GetByID implements holiday.HolidayRequestRepository.
func (r *holidayRequestRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayRequestColumns + `
		FROM holiday_requests
		WHERE id = $1
	`

	return scanHolidayRequest(q.QueryRow(ctx, query, id))
}

// ListByEmployee implements holiday.HolidayRequestRepository.
func (r *holidayRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeCode string) ([]holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayRequestColumns + `
		FROM holiday_requests
		WHERE employee_code = $1
		ORDER BY created_at DESC
	`

	return r.queryRequests(ctx, q, query, employeeCode)
}

// GetApprovedInRange implements holiday.HolidayRequestRepository.
func (r *holidayRequestRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeCode, from, to string) ([]holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayRequestColumns + `
		FROM holiday_requests
		WHERE employee_code = $1
		  AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	return r.queryRequests(ctx, q, query, employeeCode, from, to)
}

// GetPendingOrApprovedInRange implements holiday.HolidayRequestRepository.
func (r *holidayRequestRepositoryImpl) GetPendingOrApprovedInRange(ctx context.Context, employeeCode, from, to string) ([]holiday.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayRequestColumns + `
		FROM holiday_requests
		WHERE employee_code = $1
		  AND status IN ('waiting_approval', 'approved')
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	return r.queryRequests(ctx, q, query, employeeCode, from, to)
}

// UpdateStatus implements holiday.HolidayRequestRepository.
func (r *holidayRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status holiday.RequestStatus, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, reason)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("holiday request with id %s not found", id)
	}
	return nil
}

func (r *holidayRequestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args ...any) ([]holiday.HolidayRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []holiday.HolidayRequest
	for rows.Next() {
		hr, err := scanHolidayRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, hr)
	}
	return requests, rows.Err()
}
