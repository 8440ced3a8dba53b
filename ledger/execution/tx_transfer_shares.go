package execution

import (
	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger/assets"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// TransferSharesTxExecutor implements the TxExecutor interface
type TransferSharesTxExecutor struct {
	shares *assets.Ledger
}

// NewTransferSharesTxExecutor creates a new instance of TransferSharesTxExecutor
func NewTransferSharesTxExecutor(shares *assets.Ledger) *TransferSharesTxExecutor {
	return &TransferSharesTxExecutor{
		shares: shares,
	}
}

func (exec *TransferSharesTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	// The share ledger validates the batch in full before moving anything.
	return result.OK
}

func (exec *TransferSharesTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.TransferSharesTx)

	res := exec.shares.TransferBatch(view, tx.From, tx.To, tx.ProjectIDs, tx.Amounts)
	if res.IsError() {
		return res
	}

	view.Emit(types.SharesTransferredEvent{
		From:       tx.From,
		To:         tx.To,
		ProjectIDs: tx.ProjectIDs,
		Amounts:    tx.Amounts,
	})
	return result.OK
}
