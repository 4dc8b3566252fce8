package main

import (
	"github.com/spf13/cobra"

	"impractical.co/adaptable"
	"impractical.co/adaptable/internal/preview"
)

var renderParams preview.Params

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a header to stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		theme, err := loadTheme()
		if err != nil {
			return err
		}
		ctx := adaptable.LoggingContext(cmd.Context(), newLogger())
		theme.RenderHeader(ctx, cmd.OutOrStdout(), renderParams.Request())
		return nil
	},
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVar(&renderParams.PageType, "pagetype", "site-index", "page type, e.g. course-view-topics")
	flags.StringVar(&renderParams.BodyID, "bodyid", "", "body element id (defaults to page-<pagetype>)")
	flags.StringVar(&renderParams.Title, "title", "", "page title")
	flags.Int64Var(&renderParams.CourseID, "course", 1, "course id")
	flags.StringVar(&renderParams.Lang, "lang", adaptable.DefaultLang, "page language")
	flags.BoolVar(&renderParams.RTL, "rtl", false, "render right to left")
	flags.BoolVar(&renderParams.LoggedIn, "logged-in", false, "render for a logged in user")
	flags.BoolVar(&renderParams.Guest, "guest", false, "render for the guest user")
	flags.StringVar(&renderParams.User, "user", "", "full name of the logged in user")
	flags.StringVar(&renderParams.Zoom, "zoom", "", "zoom preference, e.g. zoomin")
	flags.StringVar(&renderParams.Full, "full", "", "width preference, e.g. fullin")
	flags.StringVar(&renderParams.UserAgent, "user-agent", "", "User-Agent to classify the device from")
	rootCmd.AddCommand(renderCmd)
}
