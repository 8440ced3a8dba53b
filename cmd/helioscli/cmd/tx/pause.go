package tx

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	rpcc "github.com/ybbus/jsonrpc"

	"github.com/helioshare/helioshare/cmd/helioscli/cmd/utils"
	"github.com/helioshare/helioshare/rpc"
)

// pauseCmd represents the pause command.
// Example:
//		helioscli tx pause --paused=true
var pauseCmd = &cobra.Command{
	Use:     "pause",
	Short:   "Engage or release the global pause gate",
	Example: `helioscli tx pause --paused=true`,
	Run:     doPauseCmd,
}

func doPauseCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.SetPaused", rpc.SetPausedArgs{
		Paused: pausedFlag,
	})
	if err != nil {
		utils.Error("Failed to set pause gate: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to set pause gate: %v\n", res.Error)
	}
	fmt.Printf("Pause gate engaged: %v\n", pausedFlag)
}

func init() {
	pauseCmd.Flags().BoolVar(&pausedFlag, "paused", true, "New pause gate state")
}
