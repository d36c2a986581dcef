package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/solatis/railplanner/internal/core/api"
	"github.com/solatis/railplanner/internal/core/config"
	"github.com/solatis/railplanner/internal/core/logging"
	"github.com/solatis/railplanner/internal/core/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC planner service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("host", "0.0.0.0", "gRPC server host")
	serveCmd.Flags().Int("port", 50061, "gRPC server port")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := config.Load(configFile, map[string]*pflag.Flag{
		"server.host": cmd.Flags().Lookup("host"),
		"server.port": cmd.Flags().Lookup("port"),
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	recorder, closeDB, err := openRecorder()
	if err != nil {
		return err
	}
	defer closeDB()
	if recorder == nil {
		logger.Warn("no --db-url configured, run history disabled")
	}

	service, err := api.NewPlannerService(recorder, cfg.Planner.Limits())
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	grpcServer, err := server.NewGRPCServer(&cfg.Server, service, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting railplanner", "version", Version, "addr", grpcServer.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gracefully")
		return grpcServer.Shutdown(context.WithoutCancel(gctx))
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
