package main

import (
	"fmt"
	"os"

	"github.com/everydayventures/website/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evsite",
	Short: "Everyday Ventures website server",
	Long: `evsite serves the Everyday Ventures marketing site and relays contact
form inquiries to the studio inbox through MailChannels.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "evsite %s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(versionCmd)

	initSubmitFlags()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
