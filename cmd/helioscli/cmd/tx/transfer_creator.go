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

// transferCreatorCmd represents the transfer_creator command.
// Example:
//		helioscli tx transfer_creator --requestor=0x... --id=1 --new_creator=0x...
var transferCreatorCmd = &cobra.Command{
	Use:     "transfer_creator",
	Short:   "Hand a project's admin rights to a new creator",
	Example: `helioscli tx transfer_creator --requestor=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --id=1 --new_creator=0x9F1233798E905E173560071255140b4A8aBd3Ec6`,
	Run:     doTransferCreatorCmd,
}

func doTransferCreatorCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.TransferCreator", rpc.TransferCreatorArgs{
		Requestor:  common.HexToAddress(requestorFlag),
		ProjectID:  projectIDFlag,
		NewCreator: common.HexToAddress(creatorFlag),
	})
	if err != nil {
		utils.Error("Failed to transfer creator: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to transfer creator: %v\n", res.Error)
	}
	fmt.Printf("Project %v creator transferred to %v\n", projectIDFlag, creatorFlag)
}

func init() {
	transferCreatorCmd.Flags().StringVar(&requestorFlag, "requestor", "", "Address submitting the transaction")
	transferCreatorCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	transferCreatorCmd.Flags().StringVar(&creatorFlag, "new_creator", "", "Address of the new creator")
	transferCreatorCmd.MarkFlagRequired("requestor")
	transferCreatorCmd.MarkFlagRequired("id")
	transferCreatorCmd.MarkFlagRequired("new_creator")
}
