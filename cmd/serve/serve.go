package serve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pdf_splitter/api"
	"pdf_splitter/cmd/option"
)

const (
	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 15 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second
)

// InitLogFunc configures logging before the server starts.
type InitLogFunc func(w io.Writer, level string) error

// NewCommand returns a new cobra.Command running the split HTTP API
func NewCommand(global *option.Global, stderr io.Writer, initLog InitLogFunc) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "serve the split API over HTTP",
		Long:  "serve exposes POST /api/pdf/split and POST /api/pdf/info for multipart PDF uploads",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.ValidateServer(); err != nil {
				return err
			}
			if err := initLog(stderr, global.Level(cfg, "info")); err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			srv := &http.Server{
				Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
				Handler:      api.NewRouter(&cfg),
				ReadTimeout:  ServerReadTimeout,
				WriteTimeout: ServerWriteTimeout,
				IdleTimeout:  ServerIdleTimeout,
			}
			return run(srv, cfg.Server.MaxFileSize, cfg.Server.TempDir)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "the port of server (default $PORT or 8080)")
	return cmd
}

func run(srv *http.Server, maxFileSize int64, tempDir string) error {
	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	stop := make(chan struct{})
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-quit:
			close(stop)
		case <-finished:
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":          srv.Addr,
		"max_file_size": maxFileSize,
		"temp_dir":      tempDir,
	}).Info("server starting")
	return serve(srv, stop)
}

// serve runs srv until it fails to start or stop is closed, then shuts it down gracefully.
func serve(srv *http.Server, stop <-chan struct{}) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-stop:
	}
	logrus.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logrus.Info("server exited gracefully")
	return nil
}
