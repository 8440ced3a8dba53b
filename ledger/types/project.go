package types

import (
	"fmt"
	"math/big"

	"github.com/helioshare/helioshare/common"
)

// Project is one fractional-ownership offering with a fixed share cap and
// price. The core sale terms are immutable after creation; only the flagged
// mutable fields change over the project's lifetime.
type Project struct {
	ID          uint64         `json:"id"`
	Creator     common.Address `json:"creator"`
	TotalSupply uint64         `json:"total_supply"`
	Minted      uint64         `json:"minted"`
	MinPurchase uint64         `json:"min_purchase"`
	PriceWei    *big.Int       `json:"price_wei"`
	CreatedAt   uint64         `json:"created_at"` // unix seconds; zero means "never created"
	Active      bool           `json:"active"`

	TotalEnergyKwh uint64 `json:"total_energy_kwh"`

	TotalRevenueWei      *big.Int `json:"total_revenue_wei"`
	RewardPerShareStored *big.Int `json:"reward_per_share_stored"` // scaled by Precision
}

// NewProject creates a project with zeroed accounting fields.
func NewProject(id uint64, creator common.Address, totalSupply uint64, priceWei *big.Int, minPurchase uint64, createdAt uint64) *Project {
	return &Project{
		ID:                   id,
		Creator:              creator,
		TotalSupply:          totalSupply,
		MinPurchase:          minPurchase,
		PriceWei:             new(big.Int).Set(priceWei),
		CreatedAt:            createdAt,
		Active:               true,
		TotalRevenueWei:      big.NewInt(0),
		RewardPerShareStored: big.NewInt(0),
	}
}

// Exists reports whether the project was ever created. A zero creation
// timestamp is the not-found sentinel.
func (p *Project) Exists() bool {
	return p != nil && p.CreatedAt != 0
}

// AvailableSupply returns the number of shares still issuable.
func (p *Project) AvailableSupply() uint64 {
	return p.TotalSupply - p.Minted
}

// NoNil replaces nil big.Int fields with zero values.
func (p *Project) NoNil() *Project {
	if p.PriceWei == nil {
		p.PriceWei = big.NewInt(0)
	}
	if p.TotalRevenueWei == nil {
		p.TotalRevenueWei = big.NewInt(0)
	}
	if p.RewardPerShareStored == nil {
		p.RewardPerShareStored = big.NewInt(0)
	}
	return p
}

func (p *Project) String() string {
	if p == nil {
		return "nil-Project"
	}
	return fmt.Sprintf("Project{%v creator:%v supply:%v minted:%v price:%v active:%v rps:%v}",
		p.ID, p.Creator, p.TotalSupply, p.Minted, p.PriceWei, p.Active, p.RewardPerShareStored)
}

// ProjectMetadata holds the display name of a project, immutable after
// creation.
type ProjectMetadata struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Escrow holds a project's sale proceeds awaiting withdrawal by the creator.
// It is strictly separate from revenue deposits: increased only by
// purchases, decreased only by creator withdrawals.
type Escrow struct {
	ProjectID       uint64   `json:"project_id"`
	SalesBalanceWei *big.Int `json:"sales_balance_wei"`
}

// NewEscrow creates an empty escrow for the given project.
func NewEscrow(projectID uint64) *Escrow {
	return &Escrow{
		ProjectID:       projectID,
		SalesBalanceWei: big.NewInt(0),
	}
}

// NoNil replaces nil big.Int fields with zero values.
func (e *Escrow) NoNil() *Escrow {
	if e.SalesBalanceWei == nil {
		e.SalesBalanceWei = big.NewInt(0)
	}
	return e
}
