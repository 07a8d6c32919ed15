package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-accounts/internal/config"
	"github.com/umalmyha/customer-accounts/internal/infra"
	"github.com/umalmyha/customer-accounts/internal/service"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// @title                      Customer accounts API
// @version                    1.0
// @description                Read-only JSON:API for customer hierarchy and account view sections
// @BasePath                   /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.ConfigureLogger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	storage, err := infra.OpenStorage(context.Background(), cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer storage.Close(context.Background())

	if err := start(cfg, storage); err != nil {
		logrus.Error(err)
	}
}

func start(cfg config.Config, storage *infra.Storage) error {
	customerSvc := service.NewCustomerService(storage.CustomerRps, storage.CustomerCache)

	e, err := infra.Router(cfg, customerSvc)
	if err != nil {
		return err
	}
	grpcSrv := infra.GrpcServer(cfg, customerSvc)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GrpcCfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen grpc port %d - %w", cfg.GrpcCfg.Port, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Infof("http server is listening on port %d", cfg.HTTPCfg.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped unexpectedly - %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logrus.Infof("grpc server is listening on port %d", cfg.GrpcCfg.Port)
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server stopped unexpectedly - %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logrus.Info("shutdown signal has been sent, stopping servers...")
		return shutdown(cfg, e, grpcSrv)
	})

	return g.Wait()
}

func shutdown(cfg config.Config, e *echo.Echo, grpcSrv *grpc.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
	defer cancel()

	grpcSrv.GracefulStop()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop http server gracefully - %w", err)
	}
	return nil
}
