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

// projectCmd represents the project command.
// Example:
//		helioscli query project --id=1
var projectCmd = &cobra.Command{
	Use:     "project",
	Short:   "Get project summary",
	Long:    `Get project summary.`,
	Example: `helioscli query project --id=1`,
	Run:     doProjectCmd,
}

func doProjectCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.GetProject", rpc.GetProjectArgs{
		ProjectID: projectIDFlag})
	if err != nil {
		utils.Error("Failed to get project details: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to get project details: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}

func init() {
	projectCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	projectCmd.MarkFlagRequired("id")
}
