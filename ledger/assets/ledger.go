package assets

import (
	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

//
// ------------------------- Share Ledger -------------------------
//

// TransferListener is notified before any share balance movement, for every
// affected project id, with the mint-source / burn-sink expressed as the
// zero address. The reward engine registers itself here so holder
// checkpoints are synced before balances change.
type TransferListener interface {
	OnShareTransfer(view *st.StoreView, from common.Address, to common.Address, projectIDs []uint64, amounts []uint64) result.Result
}

// Ledger tracks per-project minted counts and per-(project, holder) share
// balances, and runs the registered listeners on every balance change.
type Ledger struct {
	listeners []TransferListener
}

// NewLedger creates a share ledger with no listeners.
func NewLedger() *Ledger {
	return &Ledger{}
}

// RegisterListener registers a pre-transfer listener. Registration happens
// once at construction time; the ledger offers no way to unregister.
func (l *Ledger) RegisterListener(listener TransferListener) {
	l.listeners = append(l.listeners, listener)
}

// BalanceOf returns the holder's share balance for the given project.
func (l *Ledger) BalanceOf(view *st.StoreView, holder common.Address, projectID uint64) uint64 {
	return view.GetBalance(projectID, holder)
}

// Mint issues new shares to the holder, increasing the project's minted
// count. Listeners run before the balance is credited, with the zero
// address as the source.
func (l *Ledger) Mint(view *st.StoreView, holder common.Address, projectID uint64, amount uint64) result.Result {
	if amount == 0 {
		return result.ErrInvalidAmount
	}
	if holder.IsEmpty() {
		return result.Error("cannot mint to the zero address").
			WithErrorCode(result.CodeInvalidTransfer)
	}
	project := view.GetProject(projectID)
	if !project.Exists() {
		return result.ErrProjectNotFound
	}
	// Compared as a remainder so an amount near the uint64 ceiling cannot
	// wrap the sum past the cap. Minted never exceeds TotalSupply.
	if amount > project.TotalSupply-project.Minted {
		return result.Error("minting %v shares would exceed the supply cap of %v",
			amount, project.TotalSupply).WithErrorCode(result.CodeInsufficientSupply)
	}

	res := l.notify(view, types.ZeroAddress, holder, []uint64{projectID}, []uint64{amount})
	if res.IsError() {
		return res
	}

	project.Minted += amount
	view.SetProject(project)
	view.SetBalance(projectID, holder, view.GetBalance(projectID, holder)+amount)
	return result.OK
}

// TransferBatch moves share balances from one holder to another across a
// batch of project ids. Listeners run once for the whole batch before any
// balance moves.
func (l *Ledger) TransferBatch(view *st.StoreView, from common.Address, to common.Address, projectIDs []uint64, amounts []uint64) result.Result {
	if len(projectIDs) != len(amounts) || len(projectIDs) == 0 {
		return result.Error("project id and amount lists must be non-empty and of equal length").
			WithErrorCode(result.CodeInvalidTransfer)
	}
	if len(projectIDs) > types.MaxProjectsPerBatch {
		return result.Error("at most %v projects allowed per batch", types.MaxProjectsPerBatch).
			WithErrorCode(result.CodeInvalidTransfer)
	}
	if from.IsEmpty() || to.IsEmpty() {
		return result.Error("transfer endpoints cannot be the zero address").
			WithErrorCode(result.CodeInvalidTransfer)
	}

	// A project id may appear more than once in the batch, so the balance
	// check runs against the cumulative amount spent so far, not the
	// pre-batch balance of each entry in isolation.
	spent := make(map[uint64]uint64)
	for i, projectID := range projectIDs {
		if amounts[i] == 0 {
			return result.ErrInvalidAmount
		}
		if !view.GetProject(projectID).Exists() {
			return result.ErrProjectNotFound
		}
		if amounts[i] > view.GetBalance(projectID, from)-spent[projectID] {
			return result.Error("insufficient share balance for project %v", projectID).
				WithErrorCode(result.CodeInsufficientBalance)
		}
		spent[projectID] += amounts[i]
	}

	res := l.notify(view, from, to, projectIDs, amounts)
	if res.IsError() {
		return res
	}

	for i, projectID := range projectIDs {
		view.SetBalance(projectID, from, view.GetBalance(projectID, from)-amounts[i])
		view.SetBalance(projectID, to, view.GetBalance(projectID, to)+amounts[i])
	}
	return result.OK
}

func (l *Ledger) notify(view *st.StoreView, from, to common.Address, projectIDs []uint64, amounts []uint64) result.Result {
	for _, listener := range l.listeners {
		res := listener.OnShareTransfer(view, from, to, projectIDs, amounts)
		if res.IsError() {
			return res
		}
	}
	return result.OK
}
