package execution

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

// --------------------------------- Execution Utilities -------------------------------------

// getExistingProject loads a project, mapping the never-created sentinel to
// the not-found error.
func getExistingProject(view *st.StoreView, projectID uint64) (*types.Project, result.Result) {
	project := view.GetProject(projectID)
	if !project.Exists() {
		return nil, result.ErrProjectNotFound
	}
	return project, result.OK
}

// requireCreator checks that the requestor is the project's creator.
func requireCreator(project *types.Project, requestor common.Address) result.Result {
	if project.Creator != requestor {
		return result.Error("only the project creator may perform this operation").
			WithErrorCode(result.CodeUnauthorized)
	}
	return result.OK
}

// addHeldFunds moves the process-wide custody total by the given delta.
func addHeldFunds(view *st.StoreView, delta *big.Int) {
	held := view.GetHeldFunds()
	view.SetHeldFunds(held.Add(held, delta))
}

// subHeldFunds decreases the process-wide custody total.
func subHeldFunds(view *st.StoreView, delta *big.Int) {
	held := view.GetHeldFunds()
	view.SetHeldFunds(held.Sub(held, delta))
}
