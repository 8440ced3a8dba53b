package rpc

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/ledger/types"
)

// ------------------------------- CreateProject -----------------------------------

type CreateProjectArgs struct {
	Requestor   common.Address `json:"requestor"`
	Creator     common.Address `json:"creator"`
	Name        string         `json:"name"`
	TotalSupply uint64         `json:"total_supply"`
	PriceWei    *big.Int       `json:"price_wei"`
	MinPurchase uint64         `json:"min_purchase"`
}

type CreateProjectResult struct {
	ProjectID uint64 `json:"project_id"`
}

func (t *HeliosRPCService) CreateProject(args *CreateProjectArgs, result *CreateProjectResult) (err error) {
	projectID, res := t.ledger.CreateProject(&types.CreateProjectTx{
		Requestor:   args.Requestor,
		Creator:     args.Creator,
		Name:        args.Name,
		TotalSupply: args.TotalSupply,
		PriceWei:    args.PriceWei,
		MinPurchase: args.MinPurchase,
	})
	if res.IsError() {
		return resultToError(res)
	}
	result.ProjectID = projectID
	return nil
}

// ------------------------------- SetProjectStatus -----------------------------------

type SetProjectStatusArgs struct {
	Requestor common.Address `json:"requestor"`
	ProjectID uint64         `json:"project_id"`
	Active    bool           `json:"active"`
}

type SetProjectStatusResult struct {
}

func (t *HeliosRPCService) SetProjectStatus(args *SetProjectStatusArgs, result *SetProjectStatusResult) (err error) {
	res := t.ledger.ApplyTx(&types.SetProjectStatusTx{
		Requestor: args.Requestor,
		ProjectID: args.ProjectID,
		Active:    args.Active,
	})
	if res.IsError() {
		return resultToError(res)
	}
	return nil
}

// ------------------------------- TransferCreator -----------------------------------

type TransferCreatorArgs struct {
	Requestor  common.Address `json:"requestor"`
	ProjectID  uint64         `json:"project_id"`
	NewCreator common.Address `json:"new_creator"`
}

type TransferCreatorResult struct {
}

func (t *HeliosRPCService) TransferCreator(args *TransferCreatorArgs, result *TransferCreatorResult) (err error) {
	res := t.ledger.ApplyTx(&types.TransferCreatorTx{
		Requestor:  args.Requestor,
		ProjectID:  args.ProjectID,
		NewCreator: args.NewCreator,
	})
	if res.IsError() {
		return resultToError(res)
	}
	return nil
}

// ------------------------------- Purchase -----------------------------------

type PurchaseArgs struct {
	Buyer      common.Address `json:"buyer"`
	ProjectID  uint64         `json:"project_id"`
	Amount     uint64         `json:"amount"`
	PaymentWei *big.Int       `json:"payment_wei"`
}

type PurchaseResult struct {
	CostWei *big.Int `json:"cost_wei"`
}

func (t *HeliosRPCService) Purchase(args *PurchaseArgs, result *PurchaseResult) (err error) {
	res := t.ledger.ApplyTx(&types.PurchaseTx{
		Buyer:      args.Buyer,
		ProjectID:  args.ProjectID,
		Amount:     args.Amount,
		PaymentWei: args.PaymentWei,
	})
	if res.IsError() {
		return resultToError(res)
	}

	summary, sres := t.ledger.GetProjectSummary(args.ProjectID)
	if sres.IsError() {
		return resultToError(sres)
	}
	result.CostWei = new(big.Int).Mul(summary.PriceWei, new(big.Int).SetUint64(args.Amount))
	return nil
}

// ------------------------------- DepositRevenue -----------------------------------

type DepositRevenueArgs struct {
	Requestor common.Address `json:"requestor"`
	ProjectID uint64         `json:"project_id"`
	AmountWei *big.Int       `json:"amount_wei"`
	EnergyKwh uint64         `json:"energy_kwh"`
}

type DepositRevenueResult struct {
	NewRewardPerShare *big.Int `json:"new_reward_per_share"`
}

func (t *HeliosRPCService) DepositRevenue(args *DepositRevenueArgs, result *DepositRevenueResult) (err error) {
	res := t.ledger.ApplyTx(&types.DepositRevenueTx{
		Requestor: args.Requestor,
		ProjectID: args.ProjectID,
		AmountWei: args.AmountWei,
		EnergyKwh: args.EnergyKwh,
	})
	if res.IsError() {
		return resultToError(res)
	}

	summary, sres := t.ledger.GetProjectSummary(args.ProjectID)
	if sres.IsError() {
		return resultToError(sres)
	}
	result.NewRewardPerShare = summary.RewardPerShareStored
	return nil
}

// ------------------------------- Claim -----------------------------------

type ClaimArgs struct {
	Holder    common.Address `json:"holder"`
	ProjectID uint64         `json:"project_id"`
}

type ClaimResult struct {
}

func (t *HeliosRPCService) Claim(args *ClaimArgs, result *ClaimResult) (err error) {
	res := t.ledger.ApplyTx(&types.ClaimTx{
		Holder:    args.Holder,
		ProjectID: args.ProjectID,
	})
	if res.IsError() {
		return resultToError(res)
	}
	return nil
}

// ------------------------------- ClaimBatch -----------------------------------

type ClaimBatchArgs struct {
	Holder     common.Address `json:"holder"`
	ProjectIDs []uint64       `json:"project_ids"`
}

type ClaimBatchResult struct {
}

func (t *HeliosRPCService) ClaimBatch(args *ClaimBatchArgs, result *ClaimBatchResult) (err error) {
	res := t.ledger.ApplyTx(&types.ClaimBatchTx{
		Holder:     args.Holder,
		ProjectIDs: args.ProjectIDs,
	})
	if res.IsError() {
		return resultToError(res)
	}
	return nil
}

// ------------------------------- TransferShares -----------------------------------

type TransferSharesArgs struct {
	From       common.Address `json:"from"`
	To         common.Address `json:"to"`
	ProjectIDs []uint64       `json:"project_ids"`
	Amounts    []uint64       `json:"amounts"`
}

type TransferSharesResult struct {
}

func (t *HeliosRPCService) TransferShares(args *TransferSharesArgs, result *TransferSharesResult) (err error) {
	res := t.ledger.ApplyTx(&types.TransferSharesTx{
		From:       args.From,
		To:         args.To,
		ProjectIDs: args.ProjectIDs,
		Amounts:    args.Amounts,
	})
	if res.IsError() {
		return resultToError(res)
	}
	return nil
}

// ------------------------------- WithdrawSales -----------------------------------

type WithdrawSalesArgs struct {
	Requestor common.Address `json:"requestor"`
	ProjectID uint64         `json:"project_id"`
	Recipient common.Address `json:"recipient"`
	AmountWei *big.Int       `json:"amount_wei"`
}

type WithdrawSalesResult struct {
}

func (t *HeliosRPCService) WithdrawSales(args *WithdrawSalesArgs, result *WithdrawSalesResult) (err error) {
	res := t.ledger.ApplyTx(&types.WithdrawSalesTx{
		Requestor: args.Requestor,
		ProjectID: args.ProjectID,
		Recipient: args.Recipient,
		AmountWei: args.AmountWei,
	})
	if res.IsError() {
		return resultToError(res)
	}
	return nil
}

// ------------------------------- Pause / Resume -----------------------------------

type SetPausedArgs struct {
	Paused bool `json:"paused"`
}

type SetPausedResult struct {
	Paused bool `json:"paused"`
}

func (t *HeliosRPCService) SetPaused(args *SetPausedArgs, result *SetPausedResult) (err error) {
	if args.Paused {
		t.gate.Pause()
	} else {
		t.gate.Resume()
	}
	result.Paused = t.gate.IsPaused()
	return nil
}
