// Package server owns the process lifecycle: boot the backing services,
// start the HTTP and gRPC listeners, the queue workers and the scheduler,
// then shut everything down in order on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/charvi/app/jobs"
	"github.com/shashiranjanraj/charvi/app/models"
	"github.com/shashiranjanraj/charvi/app/schema"
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/config"
	"github.com/shashiranjanraj/charvi/internal/kernel"
	"github.com/shashiranjanraj/charvi/pkg/cache"
	"github.com/shashiranjanraj/charvi/pkg/database"
	grpcserver "github.com/shashiranjanraj/charvi/pkg/grpc"
	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/orm"
	"github.com/shashiranjanraj/charvi/pkg/queue"
	"github.com/shashiranjanraj/charvi/pkg/schedule"
	"github.com/shashiranjanraj/charvi/pkg/storage"
)

// Start boots the application and blocks until shutdown completes.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := database.DB.AutoMigrate(
		&models.Customer{}, &models.Product{}, &models.Order{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	// Redis is optional: cache misses and the in-memory queue keep the
	// app functional without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}
	storage.Connect()

	if config.Get("QUEUE_DRIVER", "memory") == "redis" && cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseDB(database.DB)

	q := orm.New(database.DB)
	resolver := &schema.Resolver{
		Customers: services.NewCustomerService(q),
		Products:  services.NewProductService(q),
		Orders:    services.NewOrderService(q),
		Reports:   services.NewReportService(q),
	}

	httpKernel, err := kernel.NewHTTPKernel(resolver)
	if err != nil {
		return fmt.Errorf("kernel: %w", err)
	}
	go httpKernel.Hub.Run()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue.StartWorkers(ctx, 4)

	jobs.Register(&jobs.Deps{
		Products: resolver.Products,
		Orders:   resolver.Orders,
		Reports:  resolver.Reports,
	})
	schedule.Start(ctx)

	grpcSrv, _, err := grpcserver.Start(config.GRPCPort())
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Charvi CRM listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		grpcserver.Stop(grpcSrv)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	grpcserver.Stop(grpcSrv)

	return nil
}
