package execution

import (
	"math/big"

	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger/rewards"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// ClaimBatchTxExecutor implements the TxExecutor interface
type ClaimBatchTxExecutor struct {
	engine  *rewards.Engine
	gateway treasury.Gateway
}

// NewClaimBatchTxExecutor creates a new instance of ClaimBatchTxExecutor
func NewClaimBatchTxExecutor(engine *rewards.Engine, gateway treasury.Gateway) *ClaimBatchTxExecutor {
	return &ClaimBatchTxExecutor{
		engine:  engine,
		gateway: gateway,
	}
}

func (exec *ClaimBatchTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.ClaimBatchTx)

	if len(tx.ProjectIDs) == 0 {
		return result.Error("the project id list cannot be empty").
			WithErrorCode(result.CodeInvalidAmount)
	}
	if len(tx.ProjectIDs) > types.MaxProjectsPerBatch {
		return result.Error("at most %v projects allowed per batch", types.MaxProjectsPerBatch).
			WithErrorCode(result.CodeInvalidAmount)
	}
	for _, projectID := range tx.ProjectIDs {
		if _, res := getExistingProject(view, projectID); res.IsError() {
			return res
		}
	}
	return result.OK
}

// process settles every project's claim into the view and pays the aggregate
// total out once. Projects with nothing to claim are skipped; a batch where
// every entry is zero fails as a whole, and a failed payout discards all the
// settled checkpoints along with the rest of the view.
func (exec *ClaimBatchTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.ClaimBatchTx)

	total := big.NewInt(0)
	for _, projectID := range tx.ProjectIDs {
		amount, res := exec.engine.SettleClaim(view, projectID, tx.Holder)
		if res.IsError() {
			if res.Code == result.CodeNothingToClaim {
				continue
			}
			return res
		}
		total.Add(total, amount)

		cp := view.GetRewardCheckpoint(projectID, tx.Holder)
		view.Emit(types.RevenueClaimedEvent{
			ProjectID:       projectID,
			Holder:          tx.Holder,
			AmountWei:       amount,
			TotalClaimedWei: cp.TotalClaimedWei,
		})
	}

	if total.Sign() == 0 {
		return result.ErrNothingToClaim
	}

	if err := exec.gateway.Send(tx.Holder, total); err != nil {
		logger.Warnf("Batch claim payout of %v wei to %v failed: %v", total, tx.Holder, err)
		return result.ErrClaimTransferFailed
	}
	subHeldFunds(view, total)

	logger.Infof("Holder %v claimed %v wei across %v projects", tx.Holder, total, len(tx.ProjectIDs))
	return result.OK
}
