package cmd

import (
	"fmt"
	"os"

	"github.com/ManahilHabibb/DraftAI/internal/api"
	"github.com/ManahilHabibb/DraftAI/internal/app"
	"github.com/ManahilHabibb/DraftAI/internal/config"
	"github.com/ManahilHabibb/DraftAI/internal/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var serverURLFlag string

var rootCmd = &cobra.Command{
	Use:   "draftai",
	Short: "A terminal draft editor with AI-assisted text generation",
	Long: `DraftAI is a terminal UI for writing drafts backed by a DraftAI server.
Drafts are edited locally and saved explicitly; an AI prompt bar appends
generated text into the draft being edited.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURLFlag, "server", "",
		"server base URL (overrides config and DRAFTAI_SERVER_URL)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	configPath := config.FindConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serverURLFlag != "" {
		cfg.ServerURL = serverURLFlag
	}

	cleanup, err := log.Init(config.LogPath(configPath))
	if err != nil {
		return fmt.Errorf("initializing log: %w", err)
	}
	defer cleanup()
	log.SetLevel(log.ParseLevel(cfg.Log.Level))
	log.Info(log.CatUI, "starting draftai", "server", cfg.ServerURL)

	client := api.NewClient(cfg.ServerURL)
	model := app.New(app.Services{
		Config:    cfg,
		Store:     client,
		Generator: client,
		Pinger:    client,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
