package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	grpcadapter "github.com/simaogato/savings-planner/internal/adapter/grpc"
	"github.com/simaogato/savings-planner/internal/adapter/rest"
	"github.com/simaogato/savings-planner/internal/adapter/xlsx"
	"github.com/simaogato/savings-planner/internal/logging"
	"github.com/simaogato/savings-planner/internal/usecase/report"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC APIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			reportService := report.NewReportService(xlsx.NewRenderer())

			httpServer := &http.Server{
				Addr:         cfg.HTTP.Addr,
				Handler:      rest.NewRouter(rest.NewHandler(reportService, logger), cfg.HTTP.CORSOrigins, logger),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			}

			grpcServer, healthServer := grpcadapter.NewGRPCServer(grpcadapter.NewServer(reportService), cfg.GRPC.APIToken, logger)
			lis, err := net.Listen("tcp", cfg.GRPC.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.GRPC.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			})

			g.Go(func() error {
				logger.Infof("gRPC server listening on %s", lis.Addr())
				if err := grpcServer.Serve(lis); err != nil {
					return fmt.Errorf("grpc server: %w", err)
				}
				return nil
			})

			// Either a signal or a failing server ends the group; both servers drain
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("Shutting down gracefully...")

				healthServer.Shutdown()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				err := httpServer.Shutdown(shutdownCtx)
				grpcServer.GracefulStop()
				logger.Info("Servers stopped")
				return err
			})

			return g.Wait()
		},
	}
}
