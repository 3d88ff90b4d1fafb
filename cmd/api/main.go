package main

import (
	"fmt"
	"net/http"

	"github.com/crewdesk/crew-backend-go/internal/config"
	appHTTP "github.com/crewdesk/crew-backend-go/internal/handler/http"
	"github.com/crewdesk/crew-backend-go/internal/pkg/bankholiday"
	"github.com/crewdesk/crew-backend-go/internal/pkg/cron"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
	"github.com/crewdesk/crew-backend-go/internal/pkg/jwt"
	"github.com/crewdesk/crew-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/crewdesk/crew-backend-go/internal/service/auth"
	serviceBooking "github.com/crewdesk/crew-backend-go/internal/service/booking"
	serviceHoliday "github.com/crewdesk/crew-backend-go/internal/service/holiday"
	serviceNotification "github.com/crewdesk/crew-backend-go/internal/service/notification"
	serviceTimesheet "github.com/crewdesk/crew-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	holidayRequestRepo := postgresql.NewHolidayRequestRepository(db)
	bankHolidayRepo := postgresql.NewBankHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(db, employeeRepo, jwtService, jwtRepo)
	holidayService := serviceHoliday.NewHolidayService(holidayRequestRepo, bankHolidayRepo, bookingRepo)
	bookingService := serviceBooking.NewBookingService(bookingRepo)
	notificationService := serviceNotification.NewNotificationService(notificationRepo)
	timesheetService := serviceTimesheet.NewTimesheetService(
		db,
		timesheetRepo,
		bookingRepo,
		employeeRepo,
		holidayService,
		notificationService,
	)

	feedClient := bankholiday.NewClient(cfg.BankHolidays.FeedURL)
	scheduler := cron.NewScheduler()
	bankHolidayJobs := cron.NewBankHolidayJobs(
		feedClient,
		bankHolidayRepo,
		[]string{cfg.BankHolidays.DefaultRegion},
		cfg.BankHolidays.RefreshInterval,
	)
	bankHolidayJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(jwtService, authService)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetService)
	holidayHandler := appHTTP.NewHolidayHandler(holidayService)
	bookingHandler := appHTTP.NewBookingHandler(bookingService)
	notificationHandler := appHTTP.NewNotificationHandler(notificationService)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		timesheetHandler,
		holidayHandler,
		bookingHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
