package execution

import (
	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger/rewards"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// DepositRevenueTxExecutor implements the TxExecutor interface
type DepositRevenueTxExecutor struct {
	authorizer Authorizer
	engine     *rewards.Engine
}

// NewDepositRevenueTxExecutor creates a new instance of DepositRevenueTxExecutor
func NewDepositRevenueTxExecutor(authorizer Authorizer, engine *rewards.Engine) *DepositRevenueTxExecutor {
	return &DepositRevenueTxExecutor{
		authorizer: authorizer,
		engine:     engine,
	}
}

func (exec *DepositRevenueTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.DepositRevenueTx)

	project, res := getExistingProject(view, tx.ProjectID)
	if res.IsError() {
		return res
	}
	if project.Creator != tx.Requestor && !exec.authorizer.IsOwner(tx.Requestor) {
		return result.ErrUnauthorized
	}
	if !project.Active {
		return result.ErrProjectNotActive
	}
	if tx.AmountWei == nil || tx.AmountWei.Sign() <= 0 {
		return result.ErrNoFundsDeposited
	}
	if project.Minted == 0 {
		return result.ErrNoTokensMinted
	}
	return result.OK
}

func (exec *DepositRevenueTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.DepositRevenueTx)

	project := view.GetProject(tx.ProjectID)
	increase, res := exec.engine.ApplyDeposit(view, project, tx.AmountWei)
	if res.IsError() {
		return res
	}

	if tx.EnergyKwh > 0 {
		project.TotalEnergyKwh += tx.EnergyKwh
		view.Emit(types.EnergyUpdatedEvent{
			ProjectID:      tx.ProjectID,
			DeltaKwh:       tx.EnergyKwh,
			TotalEnergyKwh: project.TotalEnergyKwh,
		})
	}
	view.SetProject(project)
	addHeldFunds(view, tx.AmountWei)

	view.Emit(types.RevenueDepositedEvent{
		ProjectID:         tx.ProjectID,
		Depositor:         tx.Requestor,
		AmountWei:         tx.AmountWei,
		NewRewardPerShare: project.RewardPerShareStored,
	})

	logger.Infof("Deposited %v wei of revenue to project %v, reward per share increased by %v",
		tx.AmountWei, tx.ProjectID, increase)
	return result.OK
}
