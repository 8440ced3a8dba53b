package query

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

// portfolioCmd represents the portfolio command.
// Example:
//		helioscli query portfolio --holder=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --ids=1,2,3
var portfolioCmd = &cobra.Command{
	Use:     "portfolio",
	Short:   "Get a holder's positions across projects",
	Long:    `Get a holder's balance, claimable revenue and lifetime claimed total per project.`,
	Example: `helioscli query portfolio --holder=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --ids=1,2,3`,
	Run:     doPortfolioCmd,
}

func doPortfolioCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	res, err := client.Call("helioshare.GetPortfolio", rpc.GetPortfolioArgs{
		Holder:     common.HexToAddress(holderFlag),
		ProjectIDs: projectIDs(),
	})
	if err != nil {
		utils.Error("Failed to get portfolio: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to get portfolio: %v\n", res.Error)
	}
	json, err := json.MarshalIndent(res.Result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n%v\n", err, string(json))
	}
	fmt.Println(string(json))
}

func init() {
	portfolioCmd.Flags().StringVar(&holderFlag, "holder", "", "Address of the holder")
	portfolioCmd.Flags().UintSliceVar(&projectIDsFlag, "ids", nil, "Project ids")
	portfolioCmd.MarkFlagRequired("holder")
	portfolioCmd.MarkFlagRequired("ids")
}
