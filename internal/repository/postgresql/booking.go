package postgresql

import (
	"context"

	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
)

type bookingRepositoryImpl struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepositoryImpl{db: db}
}

const bookingColumns = `
	id, employee_code, job_number, client, location, date::text, call_time,
	notes, created_at, updated_at
`

func scanBooking(row interface{ Scan(dest ...any) error }) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID,
		&b.EmployeeCode,
		&b.JobNumber,
		&b.Client,
		&b.Location,
		&b.Date,
		&b.CallTime,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// GetByID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	return scanBooking(q.QueryRow(ctx, query, id))
}

// GetAssignments implements booking.BookingRepository.
func (r *bookingRepositoryImpl) GetAssignments(ctx context.Context, employeeCode, from, to string) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE employee_code = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, job_number
	`

	rows, err := q.Query(ctx, query, employeeCode, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
