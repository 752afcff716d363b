package cmd

import (
	"fmt"
	"os"

	"github.com/ManahilHabibb/DraftAI/internal/config"
	"github.com/ManahilHabibb/DraftAI/internal/log"
	"github.com/ManahilHabibb/DraftAI/internal/server"
	"github.com/ManahilHabibb/DraftAI/internal/server/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serveAddrFlag string
	serveDataFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled DraftAI server",
	Long: `Starts the HTTP server the TUI talks to. Drafts persist to a JSON file
and AI generation uses OpenAI when OPENAI_API_KEY is set, falling back to a
mock generator otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", ":8001", "listen address")
	serveCmd.Flags().StringVar(&serveDataFlag, "data", "", "drafts file path (default <config dir>/drafts.json)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional; a missing .env file is not an error.
	_ = godotenv.Load()

	configPath := config.FindConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cleanup, err := log.Init(config.LogPath(configPath))
	if err != nil {
		return fmt.Errorf("initializing log: %w", err)
	}
	defer cleanup()
	log.SetLevel(log.ParseLevel(cfg.Log.Level))

	dataPath := serveDataFlag
	if dataPath == "" {
		dataPath = config.DataPath(configPath)
	}
	st, err := store.Open(dataPath)
	if err != nil {
		return fmt.Errorf("opening draft store: %w", err)
	}

	gen := server.NewGenerator(os.Getenv("OPENAI_API_KEY"))
	if _, mock := gen.(*server.MockGenerator); mock {
		fmt.Println("OPENAI_API_KEY not set; using mock AI generation")
	}

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.NewHandler(st, gen))

	log.Info(log.CatServer, "listening", "addr", serveAddrFlag, "data", dataPath)
	fmt.Printf("DraftAI server listening on %s (drafts: %s)\n", serveAddrFlag, dataPath)
	if err := router.Run(serveAddrFlag); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}
