package tx

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	rpcc "github.com/ybbus/jsonrpc"

	"github.com/helioshare/helioshare/cmd/helioscli/cmd/utils"
	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/rpc"
)

// purchaseCmd represents the purchase command.
// Example:
//		helioscli tx purchase --buyer=0x... --id=1 --amount=40 --payment=400
var purchaseCmd = &cobra.Command{
	Use:     "purchase",
	Short:   "Purchase newly minted shares of a project",
	Example: `helioscli tx purchase --buyer=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --id=1 --amount=40 --payment=400`,
	Run:     doPurchaseCmd,
}

func doPurchaseCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.Purchase", rpc.PurchaseArgs{
		Buyer:      common.HexToAddress(buyerFlag),
		ProjectID:  projectIDFlag,
		Amount:     amountFlag,
		PaymentWei: parseWei(paymentFlag, "payment"),
	})
	if err != nil {
		utils.Error("Failed to purchase shares: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to purchase shares: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}

func init() {
	purchaseCmd.Flags().StringVar(&buyerFlag, "buyer", "", "Address of the buyer")
	purchaseCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	purchaseCmd.Flags().Uint64Var(&amountFlag, "amount", 0, "Number of shares to purchase")
	purchaseCmd.Flags().StringVar(&paymentFlag, "payment", "", "Payment sent in wei")
	purchaseCmd.MarkFlagRequired("buyer")
	purchaseCmd.MarkFlagRequired("id")
	purchaseCmd.MarkFlagRequired("amount")
	purchaseCmd.MarkFlagRequired("payment")
}
