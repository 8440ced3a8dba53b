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

// escrowCmd represents the escrow command.
// Example:
//		helioscli query escrow --id=1
var escrowCmd = &cobra.Command{
	Use:     "escrow",
	Short:   "Get a project's sales escrow balance",
	Example: `helioscli query escrow --id=1`,
	Run:     doEscrowCmd,
}

func doEscrowCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.GetEscrow", rpc.GetEscrowArgs{
		ProjectID: projectIDFlag})
	if err != nil {
		utils.Error("Failed to get escrow balance: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to get escrow balance: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}

func init() {
	escrowCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	escrowCmd.MarkFlagRequired("id")
}
