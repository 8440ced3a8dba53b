package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/helioshare/helioshare/common"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory with a default config file.",
	Run:   runInit,
}

func init() {
	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	if cfgPath == "" {
		cfgPath = getDefaultConfigPath()
	}
	if err := os.MkdirAll(cfgPath, 0700); err != nil {
		fmt.Printf("Failed to create config directory %v: %v\n", cfgPath, err)
		os.Exit(1)
	}

	cfgFile := path.Join(cfgPath, "config.yaml")
	if _, err := os.Stat(cfgFile); err == nil {
		fmt.Printf("Config file %v already exists\n", cfgFile)
		return
	}

	if err := ioutil.WriteFile(cfgFile, []byte(common.InitialConfig), 0600); err != nil {
		fmt.Printf("Failed to write config file %v: %v\n", cfgFile, err)
		os.Exit(1)
	}
	fmt.Printf("Created config file %v\n", cfgFile)
}
