package rpc

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/ledger"
	"github.com/helioshare/helioshare/version"
)

// ------------------------------- GetProject -----------------------------------

type GetProjectArgs struct {
	ProjectID uint64 `json:"project_id"`
}

type GetProjectResult struct {
	*ledger.ProjectSummary
	MetadataURI string `json:"metadata_uri"`
}

func (t *HeliosRPCService) GetProject(args *GetProjectArgs, result *GetProjectResult) (err error) {
	summary, res := t.ledger.GetProjectSummary(args.ProjectID)
	if res.IsError() {
		return resultToError(res)
	}
	result.ProjectSummary = summary
	result.MetadataURI = t.resolver.URI(args.ProjectID)
	return nil
}

// ------------------------------- GetCreator -----------------------------------

type GetCreatorArgs struct {
	ProjectID uint64 `json:"project_id"`
}

type GetCreatorResult struct {
	Creator common.Address `json:"creator"`
}

func (t *HeliosRPCService) GetCreator(args *GetCreatorArgs, result *GetCreatorResult) (err error) {
	creator, res := t.ledger.GetCreator(args.ProjectID)
	if res.IsError() {
		return resultToError(res)
	}
	result.Creator = creator
	return nil
}

// ------------------------------- GetPortfolio -----------------------------------

type GetPortfolioArgs struct {
	Holder     common.Address `json:"holder"`
	ProjectIDs []uint64       `json:"project_ids"`
}

type GetPortfolioResult struct {
	Positions []ledger.HolderPosition `json:"positions"`
}

func (t *HeliosRPCService) GetPortfolio(args *GetPortfolioArgs, result *GetPortfolioResult) (err error) {
	positions, res := t.ledger.GetPortfolio(args.Holder, args.ProjectIDs)
	if res.IsError() {
		return resultToError(res)
	}
	result.Positions = positions
	return nil
}

// ------------------------------- GetBalance -----------------------------------

type GetBalanceArgs struct {
	Holder    common.Address `json:"holder"`
	ProjectID uint64         `json:"project_id"`
}

type GetBalanceResult struct {
	Balance uint64 `json:"balance"`
}

func (t *HeliosRPCService) GetBalance(args *GetBalanceArgs, result *GetBalanceResult) (err error) {
	result.Balance = t.ledger.GetBalance(args.Holder, args.ProjectID)
	return nil
}

// ------------------------------- GetEscrow -----------------------------------

type GetEscrowArgs struct {
	ProjectID uint64 `json:"project_id"`
}

type GetEscrowResult struct {
	SalesBalanceWei *big.Int `json:"sales_balance_wei"`
}

func (t *HeliosRPCService) GetEscrow(args *GetEscrowArgs, result *GetEscrowResult) (err error) {
	balance, res := t.ledger.GetEscrowBalance(args.ProjectID)
	if res.IsError() {
		return resultToError(res)
	}
	result.SalesBalanceWei = balance
	return nil
}

// ------------------------------- GetStatus -----------------------------------

type GetStatusArgs struct {
}

type GetStatusResult struct {
	NextProjectID uint64   `json:"next_project_id"`
	HeldFundsWei  *big.Int `json:"held_funds_wei"`
	Paused        bool     `json:"paused"`
}

func (t *HeliosRPCService) GetStatus(args *GetStatusArgs, result *GetStatusResult) (err error) {
	result.NextProjectID = t.ledger.GetNextProjectID()
	result.HeldFundsWei = t.ledger.GetHeldFunds()
	result.Paused = t.gate.IsPaused()
	return nil
}

// ------------------------------- GetVersion -----------------------------------

type GetVersionArgs struct {
}

type GetVersionResult struct {
	Version   string `json:"version"`
	GitHash   string `json:"git_hash"`
	Timestamp string `json:"timestamp"`
}

func (t *HeliosRPCService) GetVersion(args *GetVersionArgs, result *GetVersionResult) (err error) {
	result.Version = version.Version
	result.GitHash = version.GitHash
	result.Timestamp = version.Timestamp
	return nil
}
