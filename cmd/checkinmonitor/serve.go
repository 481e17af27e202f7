package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"checkinmonitor/internal/logger"
	"checkinmonitor/internal/server"
	"checkinmonitor/internal/storage"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept check-ins and serve timelines over HTTP and websocket.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "address for the web server (default from config)")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	themes, locales, err := loadPresentation(cfg)
	if err != nil {
		return err
	}
	store := storage.NewCheckInStorage(cfg.HistoryLimit)
	srv := server.New(cfg, store, themes, locales, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("server shutdown", zap.Error(err))
		}
	}()

	log.Info("checkinmonitor listening",
		zap.String("addr", cfg.Addr),
		zap.String("theme", cfg.Theme.Default),
		zap.Strings("themes", themes.Names()),
		zap.Strings("languages", locales.Languages()),
		zap.Int("history_limit", cfg.HistoryLimit),
	)
	if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
