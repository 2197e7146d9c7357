package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"equine-vet-dashboard/internal/dashboard"
	"equine-vet-dashboard/internal/domain/vitals"
	"equine-vet-dashboard/internal/platform/config"
	"equine-vet-dashboard/internal/platform/logger"
	"equine-vet-dashboard/internal/router"

	"github.com/spf13/cobra"
)

var (
	configPath string

	snapshotHorse  string
	snapshotRange  string
	snapshotWindow string
)

var rootCmd = &cobra.Command{
	Use:           "vetdash",
	Short:         "Dashboard veterinario equino",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta la API HTTP",
	RunE:  runServe,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Imprime el dashboard compuesto de un caballo como JSON",
	Long: `Abre una sesión efímera, selecciona el caballo y el rango pedidos
e imprime la vista compuesta por stdout.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("DASHBOARD_CONFIG"), "archivo YAML de configuración (o DASHBOARD_CONFIG)")

	snapshotCmd.Flags().StringVar(&snapshotHorse, "horse", "", "ID del caballo (default: el primero)")
	snapshotCmd.Flags().StringVar(&snapshotRange, "range", string(vitals.DefaultRange), "rango de vitals: 7d, 30d o 6m")
	snapshotCmd.Flags().StringVar(&snapshotWindow, "window", string(vitals.WindowTail), "recorte: tail o calendar")

	rootCmd.AddCommand(serveCmd, snapshotCmd)
}

func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
		Out:    os.Stderr,
	})
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(router.Options{Config: cfg, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	mgr := dashboard.NewManagerFromConfig(cfg, log)
	sess, err := mgr.Create(ctx)
	if err != nil {
		return err
	}
	if snapshotHorse != "" {
		if err := sess.SelectHorse(ctx, snapshotHorse); err != nil {
			return fmt.Errorf("horse %s: %w", snapshotHorse, err)
		}
	}
	if err := sess.SetRangeWindow(vitals.Range(snapshotRange), vitals.WindowMode(snapshotWindow)); err != nil {
		return err
	}

	view, err := sess.Compose(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
