package ledger

import (
	"math/big"
	"sync"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	logutil "github.com/helioshare/helioshare/common/util"
	"github.com/helioshare/helioshare/ledger/assets"
	"github.com/helioshare/helioshare/ledger/events"
	"github.com/helioshare/helioshare/ledger/execution"
	"github.com/helioshare/helioshare/ledger/rewards"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/ledger/types"
	"github.com/helioshare/helioshare/store/database"
)

var logger = logutil.GetLoggerForModule("ledger")

// PauseGate can short-circuit mutating entry points. It is consulted once at
// entry, never mid-operation.
type PauseGate interface {
	IsPaused() bool
}

//
// ------------------------- Ledger -------------------------
//

// Ledger is the top-level entry point: it serializes operations, stages each
// one on a scratch view, commits the view only on success and publishes the
// staged events after commit. Every operation is atomic per call.
type Ledger struct {
	mu sync.Mutex

	state     *st.LedgerState
	executor  *execution.Executor
	shares    *assets.Ledger
	engine    *rewards.Engine
	pauseGate PauseGate
	bus       *events.Bus
}

// NewLedger wires the share ledger, reward engine and executor over the given
// database. The reward engine is registered as the share ledger's transfer
// listener so checkpoints sync before every balance movement.
func NewLedger(db database.Database, authorizer execution.Authorizer, pauseGate PauseGate, gateway treasury.Gateway) *Ledger {
	shares := assets.NewLedger()
	engine := rewards.NewEngine()
	shares.RegisterListener(engine)

	return &Ledger{
		state:     st.NewLedgerState(db),
		executor:  execution.NewExecutor(authorizer, shares, engine, gateway),
		shares:    shares,
		engine:    engine,
		pauseGate: pauseGate,
		bus:       events.NewBus(),
	}
}

// EventBus returns the bus committed event records are published on.
func (lgr *Ledger) EventBus() *events.Bus {
	return lgr.bus
}

// ApplyTx executes a transaction against a scratch view and commits the view
// in a single batch write if execution succeeds. Any failure discards every
// mutation of the call; staged events are published only after commit.
func (lgr *Ledger) ApplyTx(tx types.Tx) result.Result {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	if lgr.pauseGate.IsPaused() {
		return result.ErrPaused
	}

	view := lgr.state.NewView()
	res := lgr.executor.ExecuteTx(view, tx)
	if res.IsError() {
		logger.Debugf("Tx %v failed: %v", tx.TxType(), res)
		return res
	}

	if err := view.Save(); err != nil {
		logger.Errorf("Failed to commit tx %v: %v", tx.TxType(), err)
		return result.ErrInternalError
	}

	lgr.bus.Publish(view.Events())
	return result.OK
}

// CreateProject is ApplyTx specialized for project creation: it returns the
// assigned project id without releasing the lock in between.
func (lgr *Ledger) CreateProject(tx *types.CreateProjectTx) (uint64, result.Result) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	if lgr.pauseGate.IsPaused() {
		return 0, result.ErrPaused
	}

	view := lgr.state.NewView()
	res := lgr.executor.ExecuteTx(view, tx)
	if res.IsError() {
		logger.Debugf("Tx %v failed: %v", tx.TxType(), res)
		return 0, res
	}
	projectID := view.GetNextProjectID() - 1

	if err := view.Save(); err != nil {
		logger.Errorf("Failed to commit tx %v: %v", tx.TxType(), err)
		return 0, result.ErrInternalError
	}

	lgr.bus.Publish(view.Events())
	return projectID, result.OK
}

// ------------------------- Read-only aggregate queries -------------------------

// ProjectSummary is the read model of one project: sale terms, counters and
// escrow in a single record.
type ProjectSummary struct {
	ID                   uint64         `json:"id"`
	Name                 string         `json:"name"`
	Creator              common.Address `json:"creator"`
	TotalSupply          uint64         `json:"total_supply"`
	Minted               uint64         `json:"minted"`
	AvailableSupply      uint64         `json:"available_supply"`
	MinPurchase          uint64         `json:"min_purchase"`
	PriceWei             *big.Int       `json:"price_wei"`
	CreatedAt            uint64         `json:"created_at"`
	Active               bool           `json:"active"`
	TotalEnergyKwh       uint64         `json:"total_energy_kwh"`
	TotalRevenueWei      *big.Int       `json:"total_revenue_wei"`
	RewardPerShareStored *big.Int       `json:"reward_per_share_stored"`
	SalesBalanceWei      *big.Int       `json:"sales_balance_wei"`
}

// HolderPosition is one holder's stake in one project: balance, claimable
// revenue and lifetime claimed total.
type HolderPosition struct {
	ProjectID       uint64   `json:"project_id"`
	Balance         uint64   `json:"balance"`
	ClaimableWei    *big.Int `json:"claimable_wei"`
	TotalClaimedWei *big.Int `json:"total_claimed_wei"`
}

// GetProjectSummary returns the project's configuration, counters and escrow
// balance.
func (lgr *Ledger) GetProjectSummary(projectID uint64) (*ProjectSummary, result.Result) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	view := lgr.state.NewView()
	project := view.GetProject(projectID)
	if !project.Exists() {
		return nil, result.ErrProjectNotFound
	}

	name := ""
	if meta := view.GetProjectMetadata(projectID); meta != nil {
		name = meta.Name
	}
	escrow := view.GetEscrow(projectID)

	return &ProjectSummary{
		ID:                   project.ID,
		Name:                 name,
		Creator:              project.Creator,
		TotalSupply:          project.TotalSupply,
		Minted:               project.Minted,
		AvailableSupply:      project.AvailableSupply(),
		MinPurchase:          project.MinPurchase,
		PriceWei:             project.PriceWei,
		CreatedAt:            project.CreatedAt,
		Active:               project.Active,
		TotalEnergyKwh:       project.TotalEnergyKwh,
		TotalRevenueWei:      project.TotalRevenueWei,
		RewardPerShareStored: project.RewardPerShareStored,
		SalesBalanceWei:      escrow.SalesBalanceWei,
	}, result.OK
}

// GetCreator returns the project's current creator account.
func (lgr *Ledger) GetCreator(projectID uint64) (common.Address, result.Result) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	project := lgr.state.NewView().GetProject(projectID)
	if !project.Exists() {
		return common.Address{}, result.ErrProjectNotFound
	}
	return project.Creator, result.OK
}

// GetPortfolio returns the holder's position for each requested project id.
func (lgr *Ledger) GetPortfolio(holder common.Address, projectIDs []uint64) ([]HolderPosition, result.Result) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	if len(projectIDs) > types.MaxProjectsPerBatch {
		return nil, result.Error("at most %v projects allowed per batch", types.MaxProjectsPerBatch)
	}

	view := lgr.state.NewView()
	positions := make([]HolderPosition, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		if !view.GetProject(projectID).Exists() {
			return nil, result.ErrProjectNotFound
		}
		cp := view.GetRewardCheckpoint(projectID, holder)
		positions = append(positions, HolderPosition{
			ProjectID:       projectID,
			Balance:         view.GetBalance(projectID, holder),
			ClaimableWei:    lgr.engine.Claimable(view, projectID, holder),
			TotalClaimedWei: cp.TotalClaimedWei,
		})
	}
	return positions, result.OK
}

// GetBalance returns the holder's share balance for one project.
func (lgr *Ledger) GetBalance(holder common.Address, projectID uint64) uint64 {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	return lgr.state.NewView().GetBalance(projectID, holder)
}

// GetEscrowBalance returns the project's sales escrow balance.
func (lgr *Ledger) GetEscrowBalance(projectID uint64) (*big.Int, result.Result) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	view := lgr.state.NewView()
	if !view.GetProject(projectID).Exists() {
		return nil, result.ErrProjectNotFound
	}
	return view.GetEscrow(projectID).SalesBalanceWei, result.OK
}

// GetHeldFunds returns the process-wide total of funds held in custody.
func (lgr *Ledger) GetHeldFunds() *big.Int {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	return lgr.state.NewView().GetHeldFunds()
}

// GetNextProjectID returns the id the next created project will receive.
func (lgr *Ledger) GetNextProjectID() uint64 {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	return lgr.state.NewView().GetNextProjectID()
}
