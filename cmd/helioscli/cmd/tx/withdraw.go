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

// withdrawCmd represents the withdraw command.
// Example:
//		helioscli tx withdraw --requestor=0x... --id=1 --recipient=0x... --wei=400
var withdrawCmd = &cobra.Command{
	Use:     "withdraw",
	Short:   "Withdraw sale proceeds from a project's escrow",
	Example: `helioscli tx withdraw --requestor=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --id=1 --recipient=0x9F1233798E905E173560071255140b4A8aBd3Ec6 --wei=400`,
	Run:     doWithdrawCmd,
}

func doWithdrawCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.WithdrawSales", rpc.WithdrawSalesArgs{
		Requestor: common.HexToAddress(requestorFlag),
		ProjectID: projectIDFlag,
		Recipient: common.HexToAddress(recipientFlag),
		AmountWei: parseWei(weiFlag, "wei"),
	})
	if err != nil {
		utils.Error("Failed to withdraw sale proceeds: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to withdraw sale proceeds: %v\n", res.Error)
	}
	fmt.Println("Withdrawal succeeded")
}

func init() {
	withdrawCmd.Flags().StringVar(&requestorFlag, "requestor", "", "Address submitting the transaction")
	withdrawCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	withdrawCmd.Flags().StringVar(&recipientFlag, "recipient", "", "Address receiving the proceeds")
	withdrawCmd.Flags().StringVar(&weiFlag, "wei", "", "Withdrawal amount in wei")
	withdrawCmd.MarkFlagRequired("requestor")
	withdrawCmd.MarkFlagRequired("id")
	withdrawCmd.MarkFlagRequired("recipient")
	withdrawCmd.MarkFlagRequired("wei")
}
