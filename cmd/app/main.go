package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avevent/backend/config"
	"github.com/avevent/backend/internal/auth"
	"github.com/avevent/backend/internal/bootstrap"
	"github.com/avevent/backend/internal/cache"
	"github.com/avevent/backend/internal/kafka"
	"github.com/avevent/backend/internal/logging"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/service/bookings"
	"github.com/avevent/backend/internal/service/identity"
	"github.com/avevent/backend/internal/service/inquiries"
	"github.com/avevent/backend/internal/service/portfolio"
	"github.com/avevent/backend/internal/service/staff"
	"github.com/avevent/backend/internal/service/testimonials"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logging.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logging.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	listingCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ListingTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	contactRepo := repository.NewContactRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	portfolioRepo := repository.NewPortfolioRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)

	resolver := identity.NewResolver(contactRepo)

	svcs := bootstrap.Services{
		Inquiries:    inquiries.NewInquiryService(inquiryRepo, resolver, producer, cfg.Kafka.NotificationsTopic),
		Bookings:     bookings.NewBookingService(bookingRepo, contactRepo, resolver, producer, cfg.Kafka.NotificationsTopic),
		Testimonials: testimonials.NewTestimonialService(testimonialRepo, resolver, listingCache),
		Portfolio:    portfolio.NewPortfolioService(portfolioRepo, listingCache),
		StaffAuth:    staff.NewAuthService(staffRepo, tokens),
	}

	if err := bootstrap.Run(ctx, cfg, tokens, svcs); err != nil {
		logging.Fatal("server error", "error", err)
	}
}
