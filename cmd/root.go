package cmd

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/octologs/wheelpicker/internal/config"
	"github.com/octologs/wheelpicker/internal/dataset"
	"github.com/octologs/wheelpicker/internal/picker"
	"github.com/octologs/wheelpicker/internal/tui"
	"github.com/octologs/wheelpicker/internal/tui/theme"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "wheelpicker",
	Short: "Wheelpicker - multi-column wheel selectors for the terminal",
	Long: `Wheelpicker is a multi-column wheel selector library with a terminal demo:
date-time columns with interdependent ranges, linked hierarchical columns,
and independent option columns.`,
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"dataset database path (default ~/.wheelpicker/datasets.db)")
}

func Execute() error {
	return rootCmd.Execute()
}

// runDemo launches the picker demo TUI
func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.Init(cfg.ColorScheme)

	// Load the linked picker's dataset; the TUI falls back to a built-in
	// sample when no dataset is stored.
	forest := loadForest(cmd.Context(), cfg.Picker.Dataset)

	model := tui.InitialModel(cfg, forest)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// loadForest loads the configured dataset, best effort.
func loadForest(ctx context.Context, name string) []*picker.Option {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := dataset.InitDB(ctx, dbPath)
	if err != nil {
		slog.Warn("dataset database unavailable", "error", err)
		return nil
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	repo := dataset.NewRepository(db)
	forest, err := repo.LoadForest(ctx, name)
	if err != nil {
		slog.Info("no stored dataset, using built-in sample", "dataset", name, "error", err)
		return nil
	}
	return forest
}
