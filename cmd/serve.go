package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/schedsim/internal/config"
	"github.com/cpusched/schedsim/internal/server"
	"github.com/cpusched/schedsim/internal/store"
)

var serverConfig = config.DefaultServerConfig()

// serveCmd runs the HTTP simulation service until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		logger := logrus.NewEntry(logrus.StandardLogger())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var st store.Store
		if serverConfig.DBPath != "" {
			sqlite, err := openStore(ctx, serverConfig.DBPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			defer sqlite.Close()
			st = sqlite
			logger.WithField("path", serverConfig.DBPath).Info("run history ready")
		}

		srv := server.New(serverConfig, st, logger)
		httpServer := &http.Server{
			Addr:              serverConfig.Addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.WithField("addr", serverConfig.Addr).Info("server starting")
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logrus.Fatalf("Server failed: %v", err)
			}
		}()

		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown error")
			return
		}
		logger.Info("server stopped")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverConfig.Addr, "addr", serverConfig.Addr, "Listen address")
	serveCmd.Flags().StringVar(&serverConfig.DBPath, "db", serverConfig.DBPath, "SQLite database for run history (empty disables history)")
	serveCmd.Flags().StringVar(&serverConfig.CORSOrigin, "cors-origin", serverConfig.CORSOrigin, "Access-Control-Allow-Origin for browser clients (empty disables CORS)")
	serveCmd.Flags().IntVar(&serverConfig.HistoryLimit, "history-limit", serverConfig.HistoryLimit, "Runs returned by GET /runs")

	rootCmd.AddCommand(serveCmd)
}
