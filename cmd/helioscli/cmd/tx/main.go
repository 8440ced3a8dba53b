package tx

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/helioshare/helioshare/cmd/helioscli/cmd/utils"
)

var (
	requestorFlag   string
	creatorFlag     string
	nameFlag        string
	totalSupplyFlag uint64
	priceFlag       string
	minPurchaseFlag uint64
	projectIDFlag   uint64
	projectIDsFlag  []uint
	activeFlag      bool
	buyerFlag       string
	holderFlag      string
	fromFlag        string
	toFlag          string
	amountFlag      uint64
	amountsFlag     []uint
	paymentFlag     string
	weiFlag         string
	energyFlag      uint64
	recipientFlag   string
	pausedFlag      bool
)

// TxCmd represents the tx command
var TxCmd = &cobra.Command{
	Use:   "tx",
	Short: "Submit ledger transactions",
}

func init() {
	TxCmd.AddCommand(createCmd)
	TxCmd.AddCommand(setStatusCmd)
	TxCmd.AddCommand(transferCreatorCmd)
	TxCmd.AddCommand(purchaseCmd)
	TxCmd.AddCommand(depositCmd)
	TxCmd.AddCommand(claimCmd)
	TxCmd.AddCommand(transferCmd)
	TxCmd.AddCommand(withdrawCmd)
	TxCmd.AddCommand(pauseCmd)
}

// parseWei parses a decimal wei amount, exiting on malformed input.
func parseWei(value string, flagName string) *big.Int {
	if value == "" {
		return nil
	}
	wei, ok := new(big.Int).SetString(value, 10)
	if !ok {
		utils.Error("Failed to parse %v: %v is not a valid decimal amount\n", flagName, value)
	}
	return wei
}

func projectIDs() []uint64 {
	ids := make([]uint64, 0, len(projectIDsFlag))
	for _, id := range projectIDsFlag {
		ids = append(ids, uint64(id))
	}
	return ids
}

func shareAmounts() []uint64 {
	amounts := make([]uint64, 0, len(amountsFlag))
	for _, amount := range amountsFlag {
		amounts = append(amounts, uint64(amount))
	}
	return amounts
}
