package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helioshare/helioshare/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Helioshare",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version %s\nGit commit %s\nBuilt at %s\n",
			version.Version, version.GitHash, version.Timestamp)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
