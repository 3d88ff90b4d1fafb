package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/pkg/bankholiday"
)

// BankHolidayJobs keeps the cached public holiday calendar fresh for every
// region employees are assigned to.
type BankHolidayJobs struct {
	client          *bankholiday.Client
	bankHolidayRepo holiday.BankHolidayRepository
	regions         []string
	interval        time.Duration
}

func NewBankHolidayJobs(client *bankholiday.Client, bankHolidayRepo holiday.BankHolidayRepository, regions []string, interval time.Duration) *BankHolidayJobs {
	return &BankHolidayJobs{
		client:          client,
		bankHolidayRepo: bankHolidayRepo,
		regions:         regions,
		interval:        interval,
	}
}

func (j *BankHolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_bank_holidays", j.interval, j.RefreshBankHolidays)
}

// RefreshBankHolidays refetches the feed and swaps the cached calendar per
// region. A region failing leaves its previous cache in place.
func (j *BankHolidayJobs) RefreshBankHolidays(ctx context.Context) error {
	var failed int
	for _, region := range j.regions {
		holidays, err := j.client.FetchRegion(ctx, region)
		if err != nil {
			slog.Error("Cron: failed to fetch bank holidays", "region", region, "error", err)
			failed++
			continue
		}

		if err := j.bankHolidayRepo.ReplaceRegion(ctx, region, holidays); err != nil {
			slog.Error("Cron: failed to cache bank holidays", "region", region, "error", err)
			failed++
			continue
		}

		slog.Info("Cron: refreshed bank holidays", "region", region, "count", len(holidays))
	}

	if failed > 0 {
		return fmt.Errorf("bank holiday refresh failed for %d of %d regions", failed, len(j.regions))
	}
	return nil
}
