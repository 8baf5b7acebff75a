package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpadapter "github.com/dnellessen/terminal-sudoku/internal/adapters/http"
	"github.com/dnellessen/terminal-sudoku/internal/generator"
	"github.com/dnellessen/terminal-sudoku/internal/hint"
	"github.com/dnellessen/terminal-sudoku/internal/session"
	"github.com/dnellessen/terminal-sudoku/internal/solver"
	"github.com/dnellessen/terminal-sudoku/internal/usecase"
	"github.com/dnellessen/terminal-sudoku/internal/validator"
)

func newServeCommand(logLevel *string) *cobra.Command {
	var addr string
	var checkUnique bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logLevel)

			s := solver.NewBacktracking()
			opts := []generator.Option{}
			if checkUnique {
				opts = append(opts, generator.WithUniquenessCheck(s))
			}
			g := generator.NewRandomized(opts...)
			uc := usecase.NewService(s, g, validator.New(), hint.NewSingles(), session.NewRegistry())

			gin.SetMode(gin.ReleaseMode)
			engine := gin.New()
			engine.Use(requestLogger(logger), gin.Recovery())
			httpadapter.New(uc).Register(engine)

			srv := &http.Server{
				Addr:              addr,
				Handler:           engine,
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info().Str("addr", addr).Bool("checkUnique", checkUnique).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("server error")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&checkUnique, "check-unique", false,
		"restore cells after carving until puzzles have a unique solution (not part of the classic generator)")
	return cmd
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}
