package types

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
)

// Tx is implemented by every ledger transaction.
type Tx interface {
	TxType() string
}

// CreateProjectTx registers a new fractional-ownership offering. Creator is
// normally left empty and defaults to the requestor; the admin may set it to
// create a project on behalf of another account.
type CreateProjectTx struct {
	Requestor   common.Address `json:"requestor"`
	Creator     common.Address `json:"creator"`
	Name        string         `json:"name"`
	TotalSupply uint64         `json:"total_supply"`
	PriceWei    *big.Int       `json:"price_wei"`
	MinPurchase uint64         `json:"min_purchase"`
}

func (tx *CreateProjectTx) TxType() string { return "create_project" }

// SetProjectStatusTx toggles the active gate on minting and revenue deposit.
type SetProjectStatusTx struct {
	Requestor common.Address `json:"requestor"`
	ProjectID uint64         `json:"project_id"`
	Active    bool           `json:"active"`
}

func (tx *SetProjectStatusTx) TxType() string { return "set_project_status" }

// TransferCreatorTx hands the project's admin rights and sale proceeds to a
// new creator account.
type TransferCreatorTx struct {
	Requestor  common.Address `json:"requestor"`
	ProjectID  uint64         `json:"project_id"`
	NewCreator common.Address `json:"new_creator"`
}

func (tx *TransferCreatorTx) TxType() string { return "transfer_creator" }

// PurchaseTx buys newly minted shares against an upfront payment.
type PurchaseTx struct {
	Buyer      common.Address `json:"buyer"`
	ProjectID  uint64         `json:"project_id"`
	Amount     uint64         `json:"amount"`
	PaymentWei *big.Int       `json:"payment_wei"`
}

func (tx *PurchaseTx) TxType() string { return "purchase" }

// DepositRevenueTx deposits revenue to be distributed pro rata to current
// shareholders. EnergyKwh is an opaque production delta recorded for
// reporting only.
type DepositRevenueTx struct {
	Requestor common.Address `json:"requestor"`
	ProjectID uint64         `json:"project_id"`
	AmountWei *big.Int       `json:"amount_wei"`
	EnergyKwh uint64         `json:"energy_kwh"`
}

func (tx *DepositRevenueTx) TxType() string { return "deposit_revenue" }

// ClaimTx pays out the holder's accumulated revenue for one project.
type ClaimTx struct {
	Holder    common.Address `json:"holder"`
	ProjectID uint64         `json:"project_id"`
}

func (tx *ClaimTx) TxType() string { return "claim" }

// ClaimBatchTx settles claims across several projects and performs a single
// aggregate payout.
type ClaimBatchTx struct {
	Holder     common.Address `json:"holder"`
	ProjectIDs []uint64       `json:"project_ids"`
}

func (tx *ClaimBatchTx) TxType() string { return "claim_batch" }

// TransferSharesTx moves share balances between holders across a batch of
// projects.
type TransferSharesTx struct {
	From       common.Address `json:"from"`
	To         common.Address `json:"to"`
	ProjectIDs []uint64       `json:"project_ids"`
	Amounts    []uint64       `json:"amounts"`
}

func (tx *TransferSharesTx) TxType() string { return "transfer_shares" }

// WithdrawSalesTx pays sale proceeds out of the project escrow to the given
// recipient.
type WithdrawSalesTx struct {
	Requestor common.Address `json:"requestor"`
	ProjectID uint64         `json:"project_id"`
	Recipient common.Address `json:"recipient"`
	AmountWei *big.Int       `json:"amount_wei"`
}

func (tx *WithdrawSalesTx) TxType() string { return "withdraw_sales" }
