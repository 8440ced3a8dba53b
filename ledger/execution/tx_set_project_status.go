package execution

import (
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// SetProjectStatusTxExecutor implements the TxExecutor interface
type SetProjectStatusTxExecutor struct {
}

// NewSetProjectStatusTxExecutor creates a new instance of SetProjectStatusTxExecutor
func NewSetProjectStatusTxExecutor() *SetProjectStatusTxExecutor {
	return &SetProjectStatusTxExecutor{}
}

func (exec *SetProjectStatusTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.SetProjectStatusTx)

	project, res := getExistingProject(view, tx.ProjectID)
	if res.IsError() {
		return res
	}
	return requireCreator(project, tx.Requestor)
}

func (exec *SetProjectStatusTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.SetProjectStatusTx)

	project := view.GetProject(tx.ProjectID)
	project.Active = tx.Active
	view.SetProject(project)

	view.Emit(types.StatusChangedEvent{
		ProjectID: tx.ProjectID,
		Active:    tx.Active,
	})
	return result.OK
}
