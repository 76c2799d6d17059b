package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"presale/adminhub/internal/config"
	"presale/adminhub/internal/handler"
	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/internal/service"
	jwtpkg "presale/adminhub/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize cache store (Redis or in-memory)
	var cacheStore repository.CacheStore
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cacheStore = repository.NewRedisCacheStore(redisClient)
		logger.Info("using Redis cache store")
	case "memory":
		cacheStore = repository.NewMemoryCacheStore()
		logger.Info("using in-memory cache store")
	default:
		logger.Fatal("unknown cache backend", zap.String("backend", cfg.Cache.Backend))
	}

	// 6. Connect to the reward document store
	mongoDB, err := config.NewMongoDatabase(cfg.Database.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	rewardSource := repository.NewMongoRewardSource(
		mongoDB,
		cfg.Database.Mongo.CodesCollection,
		cfg.Database.Mongo.ClaimsCollection,
	)

	// 7. Initialize repositories
	adminRepo := repository.NewPGAdminAccountRepository(db)
	userRepo := repository.NewPGUserRepository(db)
	donationRepo := repository.NewPGDonationRepository(db)
	withdrawalRepo := repository.NewPGWithdrawalRepository(db)
	kycRepo := repository.NewPGKYCRepository(db)

	// 8. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(
		cfg.JWT.SigningKey,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
	)

	// 9. Initialize services
	authService := service.NewAuthService(adminRepo, cacheStore, jwtManager)
	rewardService := service.NewRewardService(rewardSource, cacheStore, logger, cfg.Analytics)
	donationService := service.NewDonationService(donationRepo, userRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo)
	kycService := service.NewKYCService(kycRepo, userRepo)
	userService := service.NewUserService(userRepo, donationRepo)

	// 10. Start the background snapshot refresher
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	rewardService.StartRefreshing(refreshCtx)

	// 11. Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	rewardHandler := handler.NewRewardHandler(rewardService)
	donationHandler := handler.NewDonationHandler(donationService)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalService)
	kycHandler := handler.NewKYCHandler(kycService)
	userHandler := handler.NewUserHandler(userService)

	// 12. Setup router
	router := handler.SetupRouter(cfg, logger, jwtManager, authHandler, rewardHandler, donationHandler, withdrawalHandler, kycHandler, userHandler)

	// 13. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 14. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 15. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	stopRefresh()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
