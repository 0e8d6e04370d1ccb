package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/config"
	"github.com/snaphire/snaphire-api/internal/domain/admin"
	"github.com/snaphire/snaphire-api/internal/domain/auth"
	"github.com/snaphire/snaphire-api/internal/domain/booking"
	"github.com/snaphire/snaphire-api/internal/domain/client"
	"github.com/snaphire/snaphire-api/internal/domain/payment"
	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/report"
	"github.com/snaphire/snaphire-api/internal/domain/review"
	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/database"
	"github.com/snaphire/snaphire-api/internal/pkg/email"
	"github.com/snaphire/snaphire-api/internal/pkg/imaging"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
	pkgresponse "github.com/snaphire/snaphire-api/internal/pkg/response"
	"github.com/snaphire/snaphire-api/internal/pkg/storage"
	"github.com/snaphire/snaphire-api/internal/pkg/stripe"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting SnapHire API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	blobs := newStorage(cfg)
	imageProcessor := imaging.NewProcessor(imaging.DefaultConfig())

	mailer := email.NewService(email.NewSMTPClient(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}))
	defer mailer.Close()

	gateway := stripe.NewClient(stripe.Config{
		APIKey:  cfg.StripeAPIKey,
		BaseURL: cfg.StripeBaseURL,
		Timeout: cfg.StripeTimeout,
	})

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	photographerRepo := photographer.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	reviewRepo := review.NewRepository(db)
	reportRepo := report.NewRepository(db)
	tokenStore := auth.NewRedisRefreshTokenStore(redis)
	slotLocker := booking.NewRedisSlotLocker(redis)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, photographerRepo, tokenStore, jwtService, mailer, imageProcessor, blobs)
	photographerService := photographer.NewService(photographerRepo)
	bookingService := booking.NewService(bookingRepo, photographerRepo, userRepo, paymentRepo, gateway, slotLocker, mailer)
	paymentService := payment.NewService(paymentRepo)
	reviewService := review.NewService(reviewRepo, photographerRepo)
	reportService := report.NewService(reportRepo)
	adminService := admin.NewService(userRepo, photographerRepo, bookingRepo, paymentRepo, mailer)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	photographerHandler := photographer.NewHandler(photographerService)
	bookingHandler := booking.NewHandler(bookingService)
	clientHandler := client.NewHandler(bookingService, userRepo)
	paymentHandler := payment.NewHandler(paymentService, photographerRepo)
	reviewHandler := review.NewHandler(reviewService)
	reportHandler := report.NewHandler(reportService)
	adminHandler := admin.NewHandler(adminService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Locally stored avatars are served straight from disk.
	if cfg.StorageBackend == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(jwtService))

		r.Route("/photographers", func(r chi.Router) {
			r.Mount("/appointments", bookingHandler.PhotographerRoutes(jwtService))
			r.Mount("/earnings", paymentHandler.Routes(jwtService))
			r.Mount("/reviews", reviewHandler.PhotographerRoutes(jwtService))
			r.Mount("/", photographerHandler.Routes(jwtService))
		})

		r.Mount("/bookings", bookingHandler.Routes(jwtService))
		r.Mount("/clients", clientHandler.Routes(jwtService))
		r.Mount("/reviews", reviewHandler.Routes(jwtService))
		r.Mount("/admin", adminHandler.Routes(jwtService))
		r.Mount("/reports", reportHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func newStorage(cfg *config.Config) storage.Storage {
	if strings.EqualFold(cfg.StorageBackend, "s3") {
		s3Store, err := storage.NewS3Storage(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 storage")
		}
		return s3Store
	}

	localStore, err := storage.NewLocalStorage(cfg.UploadsDir, cfg.UploadsBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create local storage")
	}
	return localStore
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
