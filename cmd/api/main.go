package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bridalbook/internal/database"
	"bridalbook/internal/middleware"
	"bridalbook/internal/modules/booking"
	"bridalbook/internal/modules/calendar"
	jwtsvc "bridalbook/internal/pkg/jwt"
	"bridalbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	blockRepo := repository.NewCalendarBlockRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	calendarService := calendar.NewService(blockRepo, bookingRepo)
	calendarHandler := calendar.NewHandler(calendarService)

	bookingService := booking.NewService(bookingRepo, calendarService)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// public storefront endpoints
	public := r.Group("/")
	{
		bookingHandler.RegisterPublicRoutes(public)
		calendarHandler.RegisterPublicRoutes(public)
	}

	// admin console endpoints
	admin := r.Group("/admin")
	admin.Use(middleware.BearerAuth(j), middleware.AdminOnly())
	{
		bookingHandler.RegisterAdminRoutes(admin)
		calendarHandler.RegisterAdminRoutes(admin)
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
