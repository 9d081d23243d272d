package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"propcalc/internal/config"
	"propcalc/internal/logger"
	"propcalc/internal/ratelimit"
	"propcalc/internal/server"
	"propcalc/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title           Propcalc API
// @version         1.0
// @description     Rental property ROI calculator: mortgage, cash flow, returns and an investment grade.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	log.Infow("calculator assumptions",
		"source", assumptionsSource(cfg),
		"annual_interest_rate", cfg.Assumptions.AnnualInterestRate,
		"loan_term_years", cfg.Assumptions.LoanTermYears,
		"annual_expense_rate", cfg.Assumptions.AnnualExpenseRate,
	)

	calculatorService := services.NewCalculatorService(cfg.Assumptions)
	router, err := server.NewRouter(cfg, calculatorService, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting propcalc server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newLimiter picks the Redis limiter when REDIS_ADDR is set and reachable at
// startup, and the in-process limiter otherwise.
func newLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func(), error) {
	log := logger.Get()

	if cfg.RedisAddr != "" {
		rl := ratelimit.NewRedis(cfg.RedisAddr, cfg.RateLimitRequests, cfg.RateLimitWindow)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rl.Ping(pingCtx); err != nil {
			_ = rl.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Infow("using redis rate limiter",
			"addr", cfg.RedisAddr,
			"requests", cfg.RateLimitRequests,
			"window", cfg.RateLimitWindow.String(),
		)
		return rl, func() { _ = rl.Close() }, nil
	}

	ml := ratelimit.NewMemory(cfg.RateLimitRequests, cfg.RateLimitWindow)
	log.Infow("using in-memory rate limiter",
		"requests", cfg.RateLimitRequests,
		"window", cfg.RateLimitWindow.String(),
	)
	return ml, ml.Stop, nil
}

func assumptionsSource(cfg *config.Config) string {
	if cfg.AssumptionsFile == "" {
		return "defaults"
	}
	return cfg.AssumptionsFile
}
