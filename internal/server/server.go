// Package server runs the vault's service lifecycle: the gRPC listener
// (TLS in production mode), the plain HTTP health endpoint, and graceful
// shutdown with an explicit drain window.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	vaultv1 "github.com/relaysms/vault/gen/vault/v1"
	"github.com/relaysms/vault/internal/config"
	"github.com/relaysms/vault/internal/domain"
)

// Params configures the lifecycle runner. Listeners may be injected for
// port-0 testing; when nil they are created from the config.
type Params struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Handler vaultv1.EntityServer

	GRPCListener   net.Listener
	HealthListener net.Listener

	// ShutdownFuncs run after the servers drain, in order. Used to flush
	// the OTel providers.
	ShutdownFuncs []func(context.Context) error
}

// Run serves until the context is cancelled or a SIGTERM/SIGINT arrives,
// then drains: health flips to 503, in-flight RPCs finish inside the
// shutdown budget, and the shutdown funcs flush.
func Run(ctx context.Context, p Params) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, logger := p.Cfg, p.Logger

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			recovery(logger),
			accessLog(logger),
			concurrencyLimit(domain.MaxConcurrentHandlers),
		),
	}

	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	if cfg.IsProd() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.Certificate, cfg.TLS.Key)
		if err != nil {
			return fmt.Errorf("load tls credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
		grpcAddr = fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.SSLPort)
	}

	grpcServer := grpc.NewServer(opts...)
	vaultv1.RegisterEntityServer(grpcServer, p.Handler)

	var shuttingDown atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if shuttingDown.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"status":"shutting_down","service":"vault"}`)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"healthy","service":"vault"}`)
	})
	healthServer := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	grpcLn := p.GRPCListener
	if grpcLn == nil {
		var err error
		grpcLn, err = (&net.ListenConfig{}).Listen(ctx, "tcp", grpcAddr)
		if err != nil {
			return fmt.Errorf("listen grpc: %w", err)
		}
	}
	healthLn := p.HealthListener
	if healthLn == nil {
		var err error
		healthLn, err = (&net.ListenConfig{}).Listen(ctx, "tcp",
			fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.HealthPort))
		if err != nil {
			return fmt.Errorf("listen health: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting gRPC server",
			slog.String("addr", grpcLn.Addr().String()),
			slog.String("mode", cfg.Mode),
			slog.Bool("tls", cfg.IsProd()),
		)
		return grpcServer.Serve(grpcLn)
	})

	g.Go(func() error {
		logger.Info("starting health server", slog.String("addr", healthLn.Addr().String()))
		if err := healthServer.Serve(healthLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("received shutdown signal, starting graceful shutdown")

		// 1. Health flips to 503 so load balancers stop routing here.
		shuttingDown.Store(true)

		// 2. Drain delay lets endpoint removal propagate.
		time.Sleep(domain.ShutdownDrainDelay)

		// 3. Finish in-flight RPCs inside the shutdown budget, then force.
		done := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(domain.GracefulShutdownTimeout):
			logger.Warn("graceful stop timed out, forcing")
			grpcServer.Stop()
			<-done
		}

		// 4. Stop the health server.
		healthCtx, healthCancel := context.WithTimeout(context.Background(), domain.ShutdownOTELTimeout)
		defer healthCancel()
		if err := healthServer.Shutdown(healthCtx); err != nil {
			logger.Error("health server shutdown error", slog.String("error", err.Error()))
		}

		// 5. Flush observability providers, reverse of startup order.
		otelCtx, otelCancel := context.WithTimeout(context.Background(), domain.ShutdownOTELTimeout)
		defer otelCancel()
		for _, fn := range p.ShutdownFuncs {
			if err := fn(otelCtx); err != nil {
				logger.Error("shutdown hook error", slog.String("error", err.Error()))
			}
		}

		logger.Info("shutdown complete")
		return nil
	})

	err := g.Wait()
	// Serve returns ErrServerStopped after a clean GracefulStop.
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}
