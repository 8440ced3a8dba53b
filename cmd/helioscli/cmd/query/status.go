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

// statusCmd represents the status command.
// Example:
//		helioscli query status
var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Get the ledger status",
	Example: `helioscli query status`,
	Run:     doStatusCmd,
}

func doStatusCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.GetStatus", rpc.GetStatusArgs{})
	if err != nil {
		utils.Error("Failed to get ledger status: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to get ledger status: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}
