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

// transferCmd represents the transfer command.
// Example:
//		helioscli tx transfer --from=0x... --to=0x... --ids=1,2 --amounts=10,5
var transferCmd = &cobra.Command{
	Use:     "transfer",
	Short:   "Transfer share balances between holders",
	Example: `helioscli tx transfer --from=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --to=0x9F1233798E905E173560071255140b4A8aBd3Ec6 --ids=1,2 --amounts=10,5`,
	Run:     doTransferCmd,
}

func doTransferCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.TransferShares", rpc.TransferSharesArgs{
		From:       common.HexToAddress(fromFlag),
		To:         common.HexToAddress(toFlag),
		ProjectIDs: projectIDs(),
		Amounts:    shareAmounts(),
	})
	if err != nil {
		utils.Error("Failed to transfer shares: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to transfer shares: %v\n", res.Error)
	}
	fmt.Println("Transfer succeeded")
}

func init() {
	transferCmd.Flags().StringVar(&fromFlag, "from", "", "Address of the sender")
	transferCmd.Flags().StringVar(&toFlag, "to", "", "Address of the receiver")
	transferCmd.Flags().UintSliceVar(&projectIDsFlag, "ids", nil, "Project ids")
	transferCmd.Flags().UintSliceVar(&amountsFlag, "amounts", nil, "Share amounts, one per project id")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("ids")
	transferCmd.MarkFlagRequired("amounts")
}
