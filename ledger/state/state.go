package state

import (
	"github.com/helioshare/helioshare/store/database"
)

//
// ------------------------- LedgerState -------------------------
//

// LedgerState owns the ledger database and hands out scratch views. The
// caller (the ledger facade) serializes operations; each operation runs
// against its own view and commits or discards it as a unit.
type LedgerState struct {
	db database.Database
}

// NewLedgerState creates a new instance of LedgerState.
func NewLedgerState(db database.Database) *LedgerState {
	return &LedgerState{db: db}
}

// NewView returns a fresh scratch view over the current committed state.
func (s *LedgerState) NewView() *StoreView {
	return NewStoreView(s.db)
}

// Database returns the underlying database.
func (s *LedgerState) Database() database.Database {
	return s.db
}
