package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
)

type bankHolidayRepositoryImpl struct {
	db *database.DB
}

func NewBankHolidayRepository(db *database.DB) holiday.BankHolidayRepository {
	return &bankHolidayRepositoryImpl{db: db}
}

// ReplaceRegion implements holiday.BankHolidayRepository.
func (r *bankHolidayRepositoryImpl) ReplaceRegion(ctx context.Context, region string, holidays []holiday.BankHoliday) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM bank_holidays WHERE region = $1`, region); err != nil {
			return fmt.Errorf("failed to clear cached bank holidays: %w", err)
		}

		query := `
			INSERT INTO bank_holidays (region, date, title)
			VALUES ($1, $2, $3)
		`
		for _, bh := range holidays {
			if _, err := tx.Exec(ctx, query, region, bh.Date, bh.Title); err != nil {
				return fmt.Errorf("failed to insert bank holiday %s: %w", bh.Date, err)
			}
		}
		return nil
	})
}

// GetInRange implements holiday.BankHolidayRepository.
func (r *bankHolidayRepositoryImpl) GetInRange(ctx context.Context, region, from, to string) ([]holiday.BankHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT region, date::text, title
		FROM bank_holidays
		WHERE region = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, region, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.BankHoliday
	for rows.Next() {
		var bh holiday.BankHoliday
		if err := rows.Scan(&bh.Region, &bh.Date, &bh.Title); err != nil {
			return nil, err
		}
		holidays = append(holidays, bh)
	}
	return holidays, rows.Err()
}
