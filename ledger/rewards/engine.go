package rewards

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

//
// ------------------------- Reward Accounting Engine -------------------------
//
// Revenue is never divided among individual holders at deposit time. Each
// deposit folds into a single per-project accumulator (reward per share,
// scaled by types.Precision); a holder's earnings are derived lazily from
// the delta between the accumulator and the holder's last-seen value,
// multiplied by their balance. O(1) state per deposit, O(1) per holder
// touch, regardless of holder count.
//

// Engine owns the accumulator and checkpoint arithmetic. It implements the
// share ledger's TransferListener so checkpoints are synced before any
// balance movement.
type Engine struct {
}

// NewEngine creates a new instance of Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// OnShareTransfer syncs the checkpoints of both transfer endpoints for every
// affected project, skipping the mint-source / burn-sink sentinel. It runs
// before the balances move, so earnings are computed against pre-transfer
// balances.
func (e *Engine) OnShareTransfer(view *st.StoreView, from common.Address, to common.Address, projectIDs []uint64, amounts []uint64) result.Result {
	for _, projectID := range projectIDs {
		if from != types.ZeroAddress {
			e.Sync(view, projectID, from)
		}
		if to != types.ZeroAddress {
			e.Sync(view, projectID, to)
		}
	}
	return result.OK
}

// Sync reconciles the holder's pending reward against accumulator movement
// since their last checkpoint. Idempotent: a second call with unchanged
// accumulator and balance earns zero.
func (e *Engine) Sync(view *st.StoreView, projectID uint64, holder common.Address) {
	project := view.GetProject(projectID)
	if !project.Exists() {
		return
	}

	cp := view.GetRewardCheckpoint(projectID, holder)
	earned := earnedSinceCheckpoint(view.GetBalance(projectID, holder), project.RewardPerShareStored, cp.PaidPerShare)
	if earned.Sign() > 0 {
		cp.PendingWei.Add(cp.PendingWei, earned)
	}
	cp.PaidPerShare = new(big.Int).Set(project.RewardPerShareStored)
	view.SetRewardCheckpoint(projectID, holder, cp)
}

// Claimable returns the holder's total claimable revenue: committed pending
// plus earnings accrued since the last checkpoint. Matches exactly what a
// subsequent Sync would commit.
func (e *Engine) Claimable(view *st.StoreView, projectID uint64, holder common.Address) *big.Int {
	project := view.GetProject(projectID)
	if !project.Exists() {
		return big.NewInt(0)
	}

	cp := view.GetRewardCheckpoint(projectID, holder)
	earned := earnedSinceCheckpoint(view.GetBalance(projectID, holder), project.RewardPerShareStored, cp.PaidPerShare)
	return earned.Add(earned, cp.PendingWei)
}

// ApplyDeposit folds a revenue deposit into the project accumulator and the
// running revenue total, returning the accumulator increase. The project
// record is staged but not yet written back; the caller owns that.
func (e *Engine) ApplyDeposit(view *st.StoreView, project *types.Project, amount *big.Int) (*big.Int, result.Result) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, result.ErrNoFundsDeposited
	}
	if project.Minted == 0 {
		// A deposit with zero minted shares would be unattributable.
		return nil, result.ErrNoTokensMinted
	}

	// Floor division: the sole source of rounding loss, bounded by one wei
	// per minted share per deposit.
	increase := new(big.Int).Mul(amount, types.Precision)
	increase.Div(increase, new(big.Int).SetUint64(project.Minted))

	project.RewardPerShareStored.Add(project.RewardPerShareStored, increase)
	project.TotalRevenueWei.Add(project.TotalRevenueWei, amount)
	return increase, result.OK
}

// SettleClaim syncs the holder, zeroes their pending balance and credits the
// lifetime claimed total, returning the settled amount for the caller to
// pay out. The caller must abort the surrounding operation if the payout
// fails.
func (e *Engine) SettleClaim(view *st.StoreView, projectID uint64, holder common.Address) (*big.Int, result.Result) {
	project := view.GetProject(projectID)
	if !project.Exists() {
		return nil, result.ErrProjectNotFound
	}

	e.Sync(view, projectID, holder)

	cp := view.GetRewardCheckpoint(projectID, holder)
	if cp.PendingWei.Sign() == 0 {
		return big.NewInt(0), result.ErrNothingToClaim
	}

	amount := new(big.Int).Set(cp.PendingWei)
	cp.PendingWei = big.NewInt(0)
	cp.TotalClaimedWei.Add(cp.TotalClaimedWei, amount)
	view.SetRewardCheckpoint(projectID, holder, cp)
	return amount, result.OK
}

func earnedSinceCheckpoint(balance uint64, rewardPerShare *big.Int, paidPerShare *big.Int) *big.Int {
	if balance == 0 {
		return big.NewInt(0)
	}
	earned := new(big.Int).Sub(rewardPerShare, paidPerShare)
	earned.Mul(earned, new(big.Int).SetUint64(balance))
	earned.Div(earned, types.Precision)
	return earned
}
