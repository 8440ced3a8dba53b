package execution

import (
	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger/rewards"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// ClaimTxExecutor implements the TxExecutor interface
type ClaimTxExecutor struct {
	engine  *rewards.Engine
	gateway treasury.Gateway
}

// NewClaimTxExecutor creates a new instance of ClaimTxExecutor
func NewClaimTxExecutor(engine *rewards.Engine, gateway treasury.Gateway) *ClaimTxExecutor {
	return &ClaimTxExecutor{
		engine:  engine,
		gateway: gateway,
	}
}

func (exec *ClaimTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.ClaimTx)

	_, res := getExistingProject(view, tx.ProjectID)
	return res
}

func (exec *ClaimTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.ClaimTx)

	amount, res := exec.engine.SettleClaim(view, tx.ProjectID, tx.Holder)
	if res.IsError() {
		return res
	}

	// The debit above lives only in the discardable view, so a failed payout
	// unwinds the claim in full. Claim is atomic: ledger update and payout
	// succeed together or not at all.
	if err := exec.gateway.Send(tx.Holder, amount); err != nil {
		logger.Warnf("Claim payout of %v wei to %v failed: %v", amount, tx.Holder, err)
		return result.ErrClaimTransferFailed
	}
	subHeldFunds(view, amount)

	cp := view.GetRewardCheckpoint(tx.ProjectID, tx.Holder)
	view.Emit(types.RevenueClaimedEvent{
		ProjectID:       tx.ProjectID,
		Holder:          tx.Holder,
		AmountWei:       amount,
		TotalClaimedWei: cp.TotalClaimedWei,
	})

	logger.Infof("Holder %v claimed %v wei from project %v", tx.Holder, amount, tx.ProjectID)
	return result.OK
}
