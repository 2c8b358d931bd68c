package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/intellidoc-labs/intellidoc/internal/adapters/driving/httpapi"
)

var (
	flagServeHost string
	flagServePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Starts an HTTP server exposing the document, summary, and question
operations as a JSON API. Sessions are tracked with a cookie, so each
browser sees only its own documents.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if llmWarning != "" {
			cmd.Printf("%s\n", warningStyle.Render("AI features disabled: "+llmWarning))
		}

		host := flagServeHost
		port := flagServePort
		if configStore != nil {
			if !cmd.Flags().Changed("host") {
				if v := configStore.GetString("http.host"); v != "" {
					host = v
				}
			}
			if !cmd.Flags().Changed("port") {
				if v := configStore.GetInt("http.port"); v > 0 {
					port = v
				}
			}
		}

		srv := httpapi.NewServer(
			httpapi.Config{Host: host, Port: port},
			documentService,
			summaryService,
			qaService,
			sessionService,
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cmd.Printf("Listening on http://%s\n", srv.Addr())
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeHost, "host", "127.0.0.1", "interface to bind")
	serveCmd.Flags().IntVar(&flagServePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
