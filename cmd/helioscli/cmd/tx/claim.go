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

// claimCmd represents the claim command. With a single --id it claims one
// project; with --ids it settles the whole list and pays out once.
// Example:
//		helioscli tx claim --holder=0x... --id=1
//		helioscli tx claim --holder=0x... --ids=1,2,3
var claimCmd = &cobra.Command{
	Use:     "claim",
	Short:   "Claim accumulated revenue",
	Example: `helioscli tx claim --holder=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --ids=1,2,3`,
	Run:     doClaimCmd,
}

func doClaimCmd(cmd *cobra.Command, args []string) {
	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))

	var res *rpcc.RPCResponse
	var err error
	if len(projectIDsFlag) > 0 {
		res, err = client.Call("helioshare.ClaimBatch", rpc.ClaimBatchArgs{
			Holder:     common.HexToAddress(holderFlag),
			ProjectIDs: projectIDs(),
		})
	} else {
		res, err = client.Call("helioshare.Claim", rpc.ClaimArgs{
			Holder:    common.HexToAddress(holderFlag),
			ProjectID: projectIDFlag,
		})
	}
	if err != nil {
		utils.Error("Failed to claim revenue: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Failed to claim revenue: %v\n", res.Error)
	}
	fmt.Println("Claim succeeded")
}

func init() {
	claimCmd.Flags().StringVar(&holderFlag, "holder", "", "Address of the holder")
	claimCmd.Flags().Uint64Var(&projectIDFlag, "id", 0, "Project id")
	claimCmd.Flags().UintSliceVar(&projectIDsFlag, "ids", nil, "Project ids for a batch claim")
	claimCmd.MarkFlagRequired("holder")
}
