package execution

import (
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// TransferCreatorTxExecutor implements the TxExecutor interface
type TransferCreatorTxExecutor struct {
}

// NewTransferCreatorTxExecutor creates a new instance of TransferCreatorTxExecutor
func NewTransferCreatorTxExecutor() *TransferCreatorTxExecutor {
	return &TransferCreatorTxExecutor{}
}

func (exec *TransferCreatorTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.TransferCreatorTx)

	project, res := getExistingProject(view, tx.ProjectID)
	if res.IsError() {
		return res
	}
	if res := requireCreator(project, tx.Requestor); res.IsError() {
		return res
	}
	if tx.NewCreator.IsEmpty() {
		return result.ErrInvalidCreator
	}
	return result.OK
}

func (exec *TransferCreatorTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.TransferCreatorTx)

	project := view.GetProject(tx.ProjectID)
	oldCreator := project.Creator
	project.Creator = tx.NewCreator
	view.SetProject(project)

	view.Emit(types.CreatorTransferredEvent{
		ProjectID:  tx.ProjectID,
		OldCreator: oldCreator,
		NewCreator: tx.NewCreator,
	})

	logger.Infof("Transferred creator of project %v from %v to %v", tx.ProjectID, oldCreator, tx.NewCreator)
	return result.OK
}
