package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	models "acdoc-dashboard/app/models/dataset"
	repo "acdoc-dashboard/app/repository/jsonfile"
	service "acdoc-dashboard/app/service/dashboard"
	"acdoc-dashboard/config"
	"acdoc-dashboard/route"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputDir string

func main() {
	rootCmd := &cobra.Command{
		Use:          "acdoc",
		Short:        "Serve the AcDOC course dashboard",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         serve,
	}

	exportCmd := &cobra.Command{
		Use:          "export",
		Short:        "Write the three dashboard spreadsheets to a directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         export,
	}
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Output directory")

	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads the environment and builds the dashboard data.
func bootstrap(ctx context.Context) (config.Config, *zap.Logger, *models.DashboardData, error) {
	// 1. Load .env file
	if err := config.LoadEnv(); err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := config.Load()

	log, err := config.NewLogger(cfg.Debug)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	// 2. Load datasets and build the dashboard
	data, err := service.BuildDashboard(ctx, repo.NewDatasetRepository(cfg.DataDir))
	if err != nil {
		log.Error("cannot build dashboard", zap.String("data_dir", cfg.DataDir), zap.Error(err))
		_ = log.Sync()
		return cfg, nil, nil, err
	}

	log.Info("dashboard data loaded",
		zap.Int("inscritos", data.Enrollments.Len()),
		zap.Int("acessos", data.Accesses.Len()),
		zap.Int("certificados", data.Certificates.Len()),
		zap.Int("cursos_com_certificado", data.CertificateCounts.Len()),
	)
	return cfg, log, data, nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, log, data, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer log.Sync()

	// 3. Setup Fiber App
	app := config.SetupFiber(cfg, log)

	// 4. Setup Route
	if err := route.SetupDashboardRoutes(app, data, log); err != nil {
		return err
	}

	// 5. Start server
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("server forced to shutdown", zap.Error(err))
	}
	return nil
}

func export(cmd *cobra.Command, args []string) error {
	_, log, data, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	clicks := 1
	for _, h := range service.NewExportRegistry(data).Handlers() {
		artifact, err := h.Handle(&clicks)
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info("spreadsheet written", zap.String("path", path), zap.Int("rows", h.Table.Len()))
	}
	return nil
}
