// Package server exposes the starting position over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/output"
)

// Route paths.
const (
	BoardPath     = "/board"
	BoardJSONPath = "/board.json"
	BoardFENPath  = "/board/fen"
)

// Handler builds the echo instance serving the board renderings.
// Each request renders a freshly constructed board.
func Handler(cfg *config.Config, logger log.Interface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.GET(BoardPath, func(c echo.Context) error {
		return c.String(http.StatusOK, chess.NewBoard().Render())
	})
	e.GET(BoardJSONPath, func(c echo.Context) error {
		board := output.BoardToJSON(chess.NewBoard())
		if cfg.Output.JSONIndent != "" {
			return c.JSONPretty(http.StatusOK, board, cfg.Output.JSONIndent)
		}
		return c.JSON(http.StatusOK, board)
	})
	e.GET(BoardFENPath, func(c echo.Context) error {
		return c.String(http.StatusOK, chess.NewBoard().Placement()+"\n")
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(requestLogger(logger))

	return e
}

// requestLogger logs one structured entry per request.
func requestLogger(logger log.Interface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			entry := logger.WithFields(log.Fields{
				"method":   req.Method,
				"path":     req.URL.Path,
				"status":   res.Status,
				"id":       res.Header().Get(echo.HeaderXRequestID),
				"duration": time.Since(start),
			})
			if err != nil {
				entry.WithError(err).Warn("request failed")
			} else {
				entry.Debug("request")
			}
			return nil
		}
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	e := Handler(cfg, logger)

	errc := make(chan error, 1)
	go func() {
		errc <- e.Start(cfg.Server.Addr)
	}()
	logger.WithField("addr", cfg.Server.Addr).Info("serving board")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal")
	timeout := cfg.Server.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
