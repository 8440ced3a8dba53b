package query

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	rpcc "github.com/ybbus/jsonrpc"

	"github.com/helioshare/helioshare/cmd/helioscli/cmd/utils"
	"github.com/helioshare/helioshare/rpc"
)

// versionCmd returns the version of the remote node.
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Get the version of the remote node",
	Example: `helioscli query version`,
	Run:     doVersionCmd,
}

func doVersionCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.GetVersion", rpc.GetVersionArgs{})
	if err != nil {
		utils.Error("Failed to get version: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to get version: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}
