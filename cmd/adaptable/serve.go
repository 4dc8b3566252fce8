package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"impractical.co/adaptable/internal/preview"
)

var (
	serveAddr   string
	corsOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered headers over HTTP",
	Long: `serve starts a preview server. GET /header renders the page shell, with
query parameters (pagetype, bodyid, course, lang, rtl, loggedin, guest,
user, zoom, full, ua) describing the page view.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		theme, err := loadTheme()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		var opts []preview.Option
		if len(corsOrigins) > 0 {
			opts = append(opts, preview.WithAllowedOrigins(corsOrigins...))
		}
		return preview.New(theme, newLogger(), opts...).ListenAndServe(ctx, serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	serveCmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", nil, "origins allowed to fetch previews (default localhost)")
	rootCmd.AddCommand(serveCmd)
}
