package execution

import (
	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	logutil "github.com/helioshare/helioshare/common/util"
	"github.com/helioshare/helioshare/ledger/assets"
	"github.com/helioshare/helioshare/ledger/rewards"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/ledger/types"
)

var logger = logutil.GetLoggerForModule("execution")

// Authorizer answers whether an account holds the global admin capability.
// The core stores no roles itself beyond the per-project creator.
type Authorizer interface {
	IsOwner(account common.Address) bool
}

//
// TxExecutor defines the interface of the transaction executors
//
type TxExecutor interface {
	sanityCheck(view *st.StoreView, transaction types.Tx) result.Result
	process(view *st.StoreView, transaction types.Tx) result.Result
}

//
// Executor executes the transactions
//
type Executor struct {
	createProjectTxExec    *CreateProjectTxExecutor
	setProjectStatusTxExec *SetProjectStatusTxExecutor
	transferCreatorTxExec  *TransferCreatorTxExecutor
	purchaseTxExec         *PurchaseTxExecutor
	depositRevenueTxExec   *DepositRevenueTxExecutor
	claimTxExec            *ClaimTxExecutor
	claimBatchTxExec       *ClaimBatchTxExecutor
	transferSharesTxExec   *TransferSharesTxExecutor
	withdrawSalesTxExec    *WithdrawSalesTxExecutor
}

// NewExecutor creates a new instance of Executor.
func NewExecutor(authorizer Authorizer, shares *assets.Ledger, engine *rewards.Engine, gateway treasury.Gateway) *Executor {
	return &Executor{
		createProjectTxExec:    NewCreateProjectTxExecutor(authorizer),
		setProjectStatusTxExec: NewSetProjectStatusTxExecutor(),
		transferCreatorTxExec:  NewTransferCreatorTxExecutor(),
		purchaseTxExec:         NewPurchaseTxExecutor(shares, gateway),
		depositRevenueTxExec:   NewDepositRevenueTxExecutor(authorizer, engine),
		claimTxExec:            NewClaimTxExecutor(engine, gateway),
		claimBatchTxExec:       NewClaimBatchTxExecutor(engine, gateway),
		transferSharesTxExec:   NewTransferSharesTxExecutor(shares),
		withdrawSalesTxExec:    NewWithdrawSalesTxExecutor(gateway),
	}
}

// ExecuteTx runs the sanity check and, if it passes, processes the
// transaction against the given view. The caller commits or discards the
// view based on the returned result.
func (exec *Executor) ExecuteTx(view *st.StoreView, tx types.Tx) result.Result {
	txExecutor := exec.getTxExecutor(tx)
	if txExecutor == nil {
		return result.ErrEncodingError
	}

	sanityCheckResult := txExecutor.sanityCheck(view, tx)
	if sanityCheckResult.IsError() {
		return sanityCheckResult
	}

	return txExecutor.process(view, tx)
}

func (exec *Executor) getTxExecutor(tx types.Tx) TxExecutor {
	var txExecutor TxExecutor
	switch tx.(type) {
	case *types.CreateProjectTx:
		txExecutor = exec.createProjectTxExec
	case *types.SetProjectStatusTx:
		txExecutor = exec.setProjectStatusTxExec
	case *types.TransferCreatorTx:
		txExecutor = exec.transferCreatorTxExec
	case *types.PurchaseTx:
		txExecutor = exec.purchaseTxExec
	case *types.DepositRevenueTx:
		txExecutor = exec.depositRevenueTxExec
	case *types.ClaimTx:
		txExecutor = exec.claimTxExec
	case *types.ClaimBatchTx:
		txExecutor = exec.claimBatchTxExec
	case *types.TransferSharesTx:
		txExecutor = exec.transferSharesTxExec
	case *types.WithdrawSalesTx:
		txExecutor = exec.withdrawSalesTxExec
	default:
		txExecutor = nil
	}
	return txExecutor
}
