package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logger  = logrus.New()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mailwords",
	Short: "Tools for decoding email header fields",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log what is going on")
}

// Execute runs the mailwords command.
func Execute() error {
	return rootCmd.Execute()
}
