package state

import (
	"fmt"
	"math/big"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/ledger/types"
	"github.com/helioshare/helioshare/store"
	"github.com/helioshare/helioshare/store/database"
)

//
// ------------------------- StoreView -------------------------
//

// StoreView is a scratch overlay over the ledger database. Mutations stay in
// the overlay until Save commits them in a single batch; dropping the view
// discards them. Events emitted during an operation ride on the view so they
// are published only if the operation commits.
type StoreView struct {
	db     database.Database
	dirty  map[string]common.Bytes
	events []types.Event
}

// NewStoreView creates an empty overlay over the database.
func NewStoreView(db database.Database) *StoreView {
	return &StoreView{
		db:    db,
		dirty: make(map[string]common.Bytes),
	}
}

// Get returns the value corresponding to the key, or nil if absent.
func (sv *StoreView) Get(key common.Bytes) common.Bytes {
	if value, ok := sv.dirty[string(key)]; ok {
		return value
	}
	value, err := sv.db.Get(key)
	if err != nil {
		if err == store.ErrKeyNotFound {
			return nil
		}
		panic(fmt.Sprintf("Error reading key %X, error: %v", key, err))
	}
	return value
}

// Set stages the value for the key in the overlay.
func (sv *StoreView) Set(key common.Bytes, value common.Bytes) {
	sv.dirty[string(key)] = value
}

// Save commits the overlay to the database in a single batch write.
func (sv *StoreView) Save() error {
	batch := sv.db.NewBatch()
	for key, value := range sv.dirty {
		if err := batch.Put([]byte(key), value); err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	sv.dirty = make(map[string]common.Bytes)
	return nil
}

// Emit stages an event record for publication after commit.
func (sv *StoreView) Emit(ev types.Event) {
	sv.events = append(sv.events, ev)
}

// Events returns the staged event records.
func (sv *StoreView) Events() []types.Event {
	return sv.events
}

// ------------------------- Typed accessors -------------------------

// GetProject returns the project for the given id. Returns nil if the
// project was never created.
func (sv *StoreView) GetProject(projectID uint64) *types.Project {
	data := sv.Get(ProjectKey(projectID))
	if len(data) == 0 {
		return nil
	}
	project := &types.Project{}
	if err := types.FromBytes(data, project); err != nil {
		panic(fmt.Sprintf("Error reading project %X, error: %v", data, err))
	}
	return project.NoNil()
}

// SetProject stages the project record.
func (sv *StoreView) SetProject(project *types.Project) {
	data, err := types.ToBytes(project)
	if err != nil {
		panic(fmt.Sprintf("Error writing project %v, error: %v", project, err))
	}
	sv.Set(ProjectKey(project.ID), data)
}

// GetProjectMetadata returns the display metadata for the given project id.
func (sv *StoreView) GetProjectMetadata(projectID uint64) *types.ProjectMetadata {
	data := sv.Get(ProjectMetadataKey(projectID))
	if len(data) == 0 {
		return nil
	}
	meta := &types.ProjectMetadata{}
	if err := types.FromBytes(data, meta); err != nil {
		panic(fmt.Sprintf("Error reading project metadata %X, error: %v", data, err))
	}
	return meta
}

// SetProjectMetadata stages the display metadata record.
func (sv *StoreView) SetProjectMetadata(meta *types.ProjectMetadata) {
	data, err := types.ToBytes(meta)
	if err != nil {
		panic(fmt.Sprintf("Error writing project metadata %v, error: %v", meta, err))
	}
	sv.Set(ProjectMetadataKey(meta.ID), data)
}

// GetEscrow returns the sales escrow for the given project id.
func (sv *StoreView) GetEscrow(projectID uint64) *types.Escrow {
	data := sv.Get(EscrowKey(projectID))
	if len(data) == 0 {
		return types.NewEscrow(projectID)
	}
	escrow := &types.Escrow{}
	if err := types.FromBytes(data, escrow); err != nil {
		panic(fmt.Sprintf("Error reading escrow %X, error: %v", data, err))
	}
	return escrow.NoNil()
}

// SetEscrow stages the escrow record.
func (sv *StoreView) SetEscrow(escrow *types.Escrow) {
	data, err := types.ToBytes(escrow)
	if err != nil {
		panic(fmt.Sprintf("Error writing escrow %v, error: %v", escrow, err))
	}
	sv.Set(EscrowKey(escrow.ProjectID), data)
}

// GetBalance returns a holder's share balance for the given project.
func (sv *StoreView) GetBalance(projectID uint64, holder common.Address) uint64 {
	data := sv.Get(BalanceKey(projectID, holder))
	if len(data) == 0 {
		return 0
	}
	var balance uint64
	if err := types.FromBytes(data, &balance); err != nil {
		panic(fmt.Sprintf("Error reading balance %X, error: %v", data, err))
	}
	return balance
}

// SetBalance stages a holder's share balance.
func (sv *StoreView) SetBalance(projectID uint64, holder common.Address, balance uint64) {
	data, err := types.ToBytes(balance)
	if err != nil {
		panic(fmt.Sprintf("Error writing balance %v, error: %v", balance, err))
	}
	sv.Set(BalanceKey(projectID, holder), data)
}

// GetRewardCheckpoint returns a holder's reward checkpoint for the given
// project. Checkpoints are created lazily: a zeroed checkpoint is returned
// for holders that were never touched.
func (sv *StoreView) GetRewardCheckpoint(projectID uint64, holder common.Address) *types.RewardCheckpoint {
	data := sv.Get(RewardCheckpointKey(projectID, holder))
	if len(data) == 0 {
		return types.NewRewardCheckpoint()
	}
	cp := &types.RewardCheckpoint{}
	if err := types.FromBytes(data, cp); err != nil {
		panic(fmt.Sprintf("Error reading reward checkpoint %X, error: %v", data, err))
	}
	return cp.NoNil()
}

// SetRewardCheckpoint stages a holder's reward checkpoint.
func (sv *StoreView) SetRewardCheckpoint(projectID uint64, holder common.Address, cp *types.RewardCheckpoint) {
	data, err := types.ToBytes(cp)
	if err != nil {
		panic(fmt.Sprintf("Error writing reward checkpoint %v, error: %v", cp, err))
	}
	sv.Set(RewardCheckpointKey(projectID, holder), data)
}

// GetNextProjectID returns the id the next created project will receive.
func (sv *StoreView) GetNextProjectID() uint64 {
	data := sv.Get(NextProjectIDKey())
	if len(data) == 0 {
		return 1
	}
	var next uint64
	if err := types.FromBytes(data, &next); err != nil {
		panic(fmt.Sprintf("Error reading next project id %X, error: %v", data, err))
	}
	return next
}

// SetNextProjectID stages the sequential id counter.
func (sv *StoreView) SetNextProjectID(next uint64) {
	data, err := types.ToBytes(next)
	if err != nil {
		panic(fmt.Sprintf("Error writing next project id %v, error: %v", next, err))
	}
	sv.Set(NextProjectIDKey(), data)
}

// GetHeldFunds returns the process-wide total of funds held in custody
// (escrow balances plus undistributed and unclaimed revenue).
func (sv *StoreView) GetHeldFunds() *big.Int {
	data := sv.Get(HeldFundsKey())
	if len(data) == 0 {
		return big.NewInt(0)
	}
	held := new(big.Int)
	if err := types.FromBytes(data, held); err != nil {
		panic(fmt.Sprintf("Error reading held funds %X, error: %v", data, err))
	}
	return held
}

// SetHeldFunds stages the process-wide held-funds total.
func (sv *StoreView) SetHeldFunds(held *big.Int) {
	data, err := types.ToBytes(held)
	if err != nil {
		panic(fmt.Sprintf("Error writing held funds %v, error: %v", held, err))
	}
	sv.Set(HeldFundsKey(), data)
}
