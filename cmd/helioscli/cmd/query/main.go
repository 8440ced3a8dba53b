package query

import (
	"github.com/spf13/cobra"
)

var (
	projectIDFlag  uint64
	holderFlag     string
	projectIDsFlag []uint
)

func projectIDs() []uint64 {
	ids := make([]uint64, 0, len(projectIDsFlag))
	for _, id := range projectIDsFlag {
		ids = append(ids, uint64(id))
	}
	return ids
}

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query entities stored in the ledger",
}

func init() {
	QueryCmd.AddCommand(statusCmd)
	QueryCmd.AddCommand(projectCmd)
	QueryCmd.AddCommand(portfolioCmd)
	QueryCmd.AddCommand(escrowCmd)
	QueryCmd.AddCommand(versionCmd)
}
