package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"doctranslate/internal/handler"
	"doctranslate/internal/router"
	"doctranslate/internal/translator"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form and HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		if a.cfg.Server.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		r := router.Setup(a.cfg, a.logger, router.Handlers{
			UI:          handler.NewUIHandler(),
			Health:      handler.NewHealthHandler(a.translator),
			Language:    handler.NewLanguageHandler(translator.RequiresCredential(a.translator)),
			Document:    handler.NewDocumentHandler(a.documents),
			Translation: handler.NewTranslationHandler(a.translation),
		})

		srv := &http.Server{
			Addr:         a.cfg.Server.Port,
			Handler:      r,
			ReadTimeout:  a.cfg.Server.ReadTimeout,
			WriteTimeout: a.cfg.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info().Str("addr", srv.Addr).Str("provider", a.translator.Name()).Msg("server starting")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		a.logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	},
}
