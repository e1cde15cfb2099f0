package main

import (
	"context"
	"log"
	"time"

	"bridalbook/internal/database"
	"bridalbook/internal/domain"
	"bridalbook/internal/repository"
)

// Seeds a local sqlite database with demo data for the storefront.
func main() {
	db, err := database.Connect("bridalbook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM calendar_blocks")

	blocks := repository.NewCalendarBlockRepository(db)
	bookings := repository.NewBookingRepository(db)

	ctx := context.Background()

	log.Println("Creating calendar blocks...")
	holiday := &domain.CalendarBlock{
		StartAt:   time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC),
		Reason:    "Christmas closure",
		CreatedAt: time.Now().UTC(),
	}
	if err := blocks.Create(ctx, holiday); err != nil {
		log.Fatal("Seed block failed:", err)
	}

	maintenance := &domain.CalendarBlock{
		StartAt:    time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2025, 7, 14, 13, 0, 0, 0, time.UTC),
		LocationID: "downtown",
		Reason:     "Chair refit",
		CreatedAt:  time.Now().UTC(),
	}
	if err := blocks.Create(ctx, maintenance); err != nil {
		log.Fatal("Seed block failed:", err)
	}

	log.Println("Creating sample booking...")
	sample := &domain.Booking{
		CustomerName:  "Aliya T.",
		CustomerEmail: "aliya@example.com",
		CustomerPhone: "+7 701 000 0000",
		BookingDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		BookingTime:   "10:00",
		LocationID:    "downtown",
		Brides:        1,
		Maids:         3,
		Mothers:       1,
		Status:        domain.BookingPending,
		WeddingTheme:  "Garden party",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err := bookings.Create(ctx, sample); err != nil {
		log.Fatal("Seed booking failed:", err)
	}

	log.Println("Seed complete.")
}
