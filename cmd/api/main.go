package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/gal07/ramadhan-tracker/internal/adapters/cache"
	"github.com/gal07/ramadhan-tracker/internal/adapters/content"
	adapterHTTP "github.com/gal07/ramadhan-tracker/internal/adapters/handler/http"
	"github.com/gal07/ramadhan-tracker/internal/adapters/identity"
	"github.com/gal07/ramadhan-tracker/internal/adapters/messaging"
	"github.com/gal07/ramadhan-tracker/internal/adapters/repository"
	"github.com/gal07/ramadhan-tracker/internal/config"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
	"github.com/gal07/ramadhan-tracker/internal/core/workers"
)

func main() {
	startTime := time.Now()

	cfg := config.Load()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var redisClient *redis.Client
	redisClient, err = cache.NewRedisClient(cache.Options{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Printf("Redis unavailable, running without cache and rate limiting: %v", err)
		redisClient = nil
	} else {
		log.Println("Redis connected successfully.")
	}

	season, err := domain.NewSeason(cfg.SeasonStart, cfg.SeasonDays)
	if err != nil {
		log.Fatalf("Critical: Invalid season configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userRepo := repository.NewPostgresUserRepository(db)
	friendRepo := repository.NewPostgresFriendRepository(db)
	tokenRepo := repository.NewPostgresDeviceTokenRepository(db)

	var logRepo domain.DailyLogRepository = repository.NewPostgresDailyLogRepository(db)
	if redisClient != nil {
		logRepo = repository.NewCachedDailyLogRepository(logRepo, redisClient)
	}

	var pushGateway services.PushGateway
	if cfg.FCMProjectID != "" {
		gateway, err := messaging.NewFCMGateway(ctx, cfg.FCMProjectID, cfg.FCMCredentialsFile)
		if err != nil {
			log.Fatalf("Critical: Failed to initialize FCM: %v", err)
		}
		pushGateway = gateway
	} else {
		log.Println("FCM_PROJECT_ID not set, push notifications disabled.")
	}

	verifier := identity.NewGoogleVerifier(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.FrontendURL)

	authService := services.NewAuthService(userRepo, verifier)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiration, userRepo)
	logService := services.NewLogService(logRepo, season)
	statsService := services.NewStatsService(logRepo, friendRepo)
	notificationService := services.NewNotificationService(tokenRepo, pushGateway)
	quranService := services.NewQuranService(content.NewQuranClient(cfg.QuranAPIBaseURL), redisClient)
	prayerService := services.NewPrayerService(content.NewPrayerClient(cfg.PrayerAPIBaseURL), redisClient)

	pushWorker := workers.NewPushWorker(notificationService)
	pushWorker.Start(ctx)

	friendService := services.NewFriendService(friendRepo, pushWorker)

	if err := authService.SeedCredentialsUser(ctx, cfg.SeedUserEmail, cfg.SeedUserName, cfg.SeedUserPassword); err != nil {
		log.Fatalf("Critical: Failed to seed credentials user: %v", err)
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:         adapterHTTP.NewAuthHandler(authService, tokenService),
		LogHandler:          adapterHTTP.NewLogHandler(logService),
		StatsHandler:        adapterHTTP.NewStatsHandler(statsService),
		FriendHandler:       adapterHTTP.NewFriendHandler(friendService),
		NotificationHandler: adapterHTTP.NewNotificationHandler(notificationService),
		ContentHandler:      adapterHTTP.NewContentHandler(quranService, prayerService),
		TokenService:        tokenService,
		DB:                  db,
		Redis:               redisClient,
		StartTime:           startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Ramadhan Tracker API running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
