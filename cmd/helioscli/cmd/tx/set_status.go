package tx

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	rpcc "github.com/ybbus/jsonrpc"

	"github.com/helioshare/helioshare/cmd/helioscli/cmd/utils"
	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/rpc"
)

// setStatusCmd represents the set_status command.
// Example:
//		helioscli tx set_status --requestor=0x... --id=1 --active=false
var setStatusCmd = &cobra.Command{
	Use:     "set_status",
	Short:   "Activate or deactivate a project",
	Example: `helioscli tx set_status --requestor=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --id=1 --active=false`,
	Run:     doSetStatusCmd,
}

func doSetStatusCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.SetProjectStatus", rpc.SetProjectStatusArgs{
		Requestor: common.HexToAddress(requestorFlag),
		ProjectID: projectIDFlag,
		Active:    activeFlag,
	})
	if err != nil {
		utils.Error("Failed to set project status: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to set project status: %v\n", res.Error)
	}
	fmt.Printf("Project %v active: %v\n", projectIDFlag, activeFlag)
}

func init() {
	setStatusCmd.Flags().StringVar(&requestorFlag, "requestor", "", "Address submitting the transaction")
	setStatusCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	setStatusCmd.Flags().BoolVar(&activeFlag, "active", true, "New active state")
	setStatusCmd.MarkFlagRequired("requestor")
	setStatusCmd.MarkFlagRequired("id")
}
