package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/issuepilot/issuepilot/internal/server"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  `Start the REST API exposing issue analysis, batch analysis, markdown export and the GitHub webhook receiver.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			a, err := buildApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			fiberApp := server.New(cfg, a.analyzer, a.gh)

			log.Printf("issuepilot listening on port %s (llm=%s, embeddings=%v)",
				cfg.Server.Port, cfg.LLM.Provider, cfg.Embedding.Enabled)

			return fiberApp.Listen(":" + cfg.Server.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "override listen port")
	return cmd
}
