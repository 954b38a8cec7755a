package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/sanjeevani/coordination-api/internal/config"
	"github.com/sanjeevani/coordination-api/internal/handler"
	authHandler "github.com/sanjeevani/coordination-api/internal/handler/auth"
	donorHandler "github.com/sanjeevani/coordination-api/internal/handler/donor"
	organHandler "github.com/sanjeevani/coordination-api/internal/handler/organ"
	requestHandler "github.com/sanjeevani/coordination-api/internal/handler/request"
	stockHandler "github.com/sanjeevani/coordination-api/internal/handler/stock"
	"github.com/sanjeevani/coordination-api/internal/middleware"
	"github.com/sanjeevani/coordination-api/internal/repository/memory"
	"github.com/sanjeevani/coordination-api/internal/router"
	donorService "github.com/sanjeevani/coordination-api/internal/service/donor"
	identityService "github.com/sanjeevani/coordination-api/internal/service/identity"
	notifierService "github.com/sanjeevani/coordination-api/internal/service/notifier"
	resourceService "github.com/sanjeevani/coordination-api/internal/service/resource"
	"github.com/sanjeevani/coordination-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.NewLogger(nil)

	// In-memory repositories; all state resets on restart
	directory := memory.NewUserDirectory()
	stockRepo := memory.NewStockRepository()
	organRepo := memory.NewOrganRepository()
	requestRepo := memory.NewRequestRepository()
	oppRepo := memory.NewOpportunityRepository()
	donationRepo := memory.NewDonationRepository()

	if cfg.Seed.Demo {
		ctx := context.Background()
		if err := memory.SeedDirectory(ctx, directory); err != nil {
			log.Fatal().Err(err).Msg("failed to seed directory")
		}
		if err := memory.SeedDonorData(ctx, donationRepo, oppRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed donor data")
		}
	}

	// Services
	notifier := notifierService.NewService(nil, notifierService.Config{
		HospitalContactDelay: cfg.Notifier.HospitalContactDelay,
		DonorNotifyDelay:     cfg.Notifier.DonorNotifyDelay,
	}, appLog)
	identitySvc := identityService.NewService(directory, identityService.NewDefaultPolicy(directory), cfg.Session.TTL)
	resourceSvc := resourceService.NewService(stockRepo, organRepo, requestRepo, notifier)
	donorSvc := donorService.NewService(donationRepo, oppRepo)

	// Handlers
	h := handler.NewHandler()
	authH := authHandler.NewHandler(identitySvc)
	stockH := stockHandler.NewHandler(resourceSvc)
	organH := organHandler.NewHandler(resourceSvc)
	requestH := requestHandler.NewHandler(resourceSvc)
	donorH := donorHandler.NewHandler(donorSvc)

	authMiddleware := middleware.NewAuthMiddleware(identitySvc)

	routerCfg := router.Config{
		CORS:          middleware.DefaultCORSConfig(),
		MetricsPrefix: "sanjeevani",
	}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerCfg.RateBurst = cfg.RateLimit.Burst
	}

	r := router.NewRouter(authMiddleware, h, authH, stockH, organH, requestH, donorH, routerCfg)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
