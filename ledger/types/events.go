package types

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
)

// Event is a record emitted for off-core observers after an operation
// commits. Events of an aborted operation are never published.
type Event interface {
	EventName() string
}

type ProjectCreatedEvent struct {
	ProjectID   uint64         `json:"project_id"`
	Creator     common.Address `json:"creator"`
	Name        string         `json:"name"`
	TotalSupply uint64         `json:"total_supply"`
	PriceWei    *big.Int       `json:"price_wei"`
}

func (e ProjectCreatedEvent) EventName() string { return "project_created" }

type SharesMintedEvent struct {
	ProjectID uint64         `json:"project_id"`
	Holder    common.Address `json:"holder"`
	Amount    uint64         `json:"amount"`
	CostWei   *big.Int       `json:"cost_wei"`
}

func (e SharesMintedEvent) EventName() string { return "shares_minted" }

type RevenueDepositedEvent struct {
	ProjectID         uint64         `json:"project_id"`
	Depositor         common.Address `json:"depositor"`
	AmountWei         *big.Int       `json:"amount_wei"`
	NewRewardPerShare *big.Int       `json:"new_reward_per_share"`
}

func (e RevenueDepositedEvent) EventName() string { return "revenue_deposited" }

type RevenueClaimedEvent struct {
	ProjectID       uint64         `json:"project_id"`
	Holder          common.Address `json:"holder"`
	AmountWei       *big.Int       `json:"amount_wei"`
	TotalClaimedWei *big.Int       `json:"total_claimed_wei"`
}

func (e RevenueClaimedEvent) EventName() string { return "revenue_claimed" }

type SalesWithdrawnEvent struct {
	ProjectID uint64         `json:"project_id"`
	Recipient common.Address `json:"recipient"`
	AmountWei *big.Int       `json:"amount_wei"`
}

func (e SalesWithdrawnEvent) EventName() string { return "sales_withdrawn" }

type EnergyUpdatedEvent struct {
	ProjectID      uint64 `json:"project_id"`
	DeltaKwh       uint64 `json:"delta_kwh"`
	TotalEnergyKwh uint64 `json:"total_energy_kwh"`
}

func (e EnergyUpdatedEvent) EventName() string { return "energy_updated" }

type StatusChangedEvent struct {
	ProjectID uint64 `json:"project_id"`
	Active    bool   `json:"active"`
}

func (e StatusChangedEvent) EventName() string { return "status_changed" }

type CreatorTransferredEvent struct {
	ProjectID  uint64         `json:"project_id"`
	OldCreator common.Address `json:"old_creator"`
	NewCreator common.Address `json:"new_creator"`
}

func (e CreatorTransferredEvent) EventName() string { return "creator_transferred" }

type SharesTransferredEvent struct {
	From       common.Address `json:"from"`
	To         common.Address `json:"to"`
	ProjectIDs []uint64       `json:"project_ids"`
	Amounts    []uint64       `json:"amounts"`
}

func (e SharesTransferredEvent) EventName() string { return "shares_transferred" }
