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

// depositCmd represents the deposit command.
// Example:
//		helioscli tx deposit --requestor=0x... --id=1 --wei=400 --energy=1250
var depositCmd = &cobra.Command{
	Use:     "deposit",
	Short:   "Deposit revenue to be distributed pro rata to shareholders",
	Example: `helioscli tx deposit --requestor=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --id=1 --wei=400 --energy=1250`,
	Run:     doDepositCmd,
}

func doDepositCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.DepositRevenue", rpc.DepositRevenueArgs{
		Requestor: common.HexToAddress(requestorFlag),
		ProjectID: projectIDFlag,
		AmountWei: parseWei(weiFlag, "wei"),
		EnergyKwh: energyFlag,
	})
	if err != nil {
		utils.Error("Failed to deposit revenue: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to deposit revenue: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}

func init() {
	depositCmd.Flags().StringVar(&requestorFlag, "requestor", "", "Address submitting the transaction")
	depositCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	depositCmd.Flags().StringVar(&weiFlag, "wei", "", "Revenue amount in wei")
	depositCmd.Flags().Uint64Var(&energyFlag, "energy", 0, "Energy production delta in kWh")
	depositCmd.MarkFlagRequired("requestor")
	depositCmd.MarkFlagRequired("id")
	depositCmd.MarkFlagRequired("wei")
}
