package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/config"
	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/logging"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "madboat",
	Short: "Persona quiz that reads how you write",
	Long: "MadBoat classifies a respondent into one of six personas from a short quiz,\n" +
		"combining what they answer with how they type it.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MADBOAT_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides MADBOAT_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MADBOAT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// env is what most commands need: configuration, a logger and the store.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	store  *store.Store
}

// setup loads configuration and opens the store. Console logging goes to
// stderr unless the terminal UI owns the screen.
func setup(cmd *cobra.Command, console bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	opts := logging.Options{Level: cfg.LogLevel, Dir: cfg.LogDir}
	if opts.Dir == "" {
		opts.Dir = logging.DefaultDir()
	}
	if console {
		opts.Console = os.Stderr
	}
	logger, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))
	return &env{cfg: cfg, logger: logger, store: st}, nil
}

func (e *env) Close() {
	e.store.Close()
	_ = e.logger.Sync()
}

func (e *env) classifier() *quiz.Classifier {
	return quiz.NewClassifier(quiz.DefaultBank())
}

// refineService builds the second-opinion service. Without a configured
// provider it returns a disabled service.
func (e *env) refineService(ctx context.Context) *refine.Service {
	events := e.store.EventRepo()
	opts := []refine.Option{
		refine.WithThreshold(e.cfg.RefineThreshold),
		refine.WithRecorder(events),
		refine.WithLogger(e.logger.Named("refine")),
	}
	if !e.cfg.RefineEnabled {
		return refine.NewService(nil, refine.DefaultConfig(), opts...)
	}

	provider, err := llm.NewProvider(ctx, e.cfg.LLM, events, e.logger.Named("llm"))
	switch {
	case errors.Is(err, llm.ErrDisabled):
		e.logger.Debug("second opinion disabled: no LLM provider configured")
	case err != nil:
		e.logger.Warn("LLM provider unavailable, second opinion disabled", zap.Error(err))
	}
	return refine.NewService(provider, refine.DefaultConfig(), opts...)
}
