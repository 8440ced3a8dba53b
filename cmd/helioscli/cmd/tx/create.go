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

// createCmd represents the create command.
// Example:
//		helioscli tx create --requestor=0x... --name="Rooftop Array 7" --supply=1000 --price=25000000000000000 --min=10
var createCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a new project",
	Example: `helioscli tx create --requestor=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --name="Rooftop Array 7" --supply=1000 --price=25000000000000000 --min=10`,
	Run:     doCreateCmd,
}

func doCreateCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.CreateProject", rpc.CreateProjectArgs{
		Requestor:   common.HexToAddress(requestorFlag),
		Creator:     common.HexToAddress(creatorFlag),
		Name:        nameFlag,
		TotalSupply: totalSupplyFlag,
		PriceWei:    parseWei(priceFlag, "price"),
		MinPurchase: minPurchaseFlag,
	})
	if err != nil {
		utils.Error("Failed to create project: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to create project: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}

func init() {
	createCmd.Flags().StringVar(&requestorFlag, "requestor", "", "Address submitting the transaction")
	createCmd.Flags().StringVar(&creatorFlag, "creator", "", "Creator address (admin only, defaults to the requestor)")
	createCmd.Flags().StringVar(&nameFlag, "name", "", "Display name of the project")
	createCmd.Flags().Uint64Var(&totalSupplyFlag, "supply", 0, "Total share supply")
	createCmd.Flags().StringVar(&priceFlag, "price", "", "Per-share price in wei")
	createCmd.Flags().Uint64Var(&minPurchaseFlag, "min", 1, "Minimum purchase in shares")
	createCmd.MarkFlagRequired("requestor")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("supply")
	createCmd.MarkFlagRequired("price")
}
