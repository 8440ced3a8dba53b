package execution

import (
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// WithdrawSalesTxExecutor implements the TxExecutor interface
type WithdrawSalesTxExecutor struct {
	gateway treasury.Gateway
}

// NewWithdrawSalesTxExecutor creates a new instance of WithdrawSalesTxExecutor
func NewWithdrawSalesTxExecutor(gateway treasury.Gateway) *WithdrawSalesTxExecutor {
	return &WithdrawSalesTxExecutor{
		gateway: gateway,
	}
}

func (exec *WithdrawSalesTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.WithdrawSalesTx)

	project, res := getExistingProject(view, tx.ProjectID)
	if res.IsError() {
		return res
	}
	if res := requireCreator(project, tx.Requestor); res.IsError() {
		return res
	}
	if tx.AmountWei == nil || tx.AmountWei.Sign() <= 0 {
		return result.ErrInvalidAmount
	}

	escrow := view.GetEscrow(tx.ProjectID)
	if tx.AmountWei.Cmp(escrow.SalesBalanceWei) > 0 {
		return result.Error("withdrawal of %v wei exceeds the escrow balance of %v",
			tx.AmountWei, escrow.SalesBalanceWei).WithErrorCode(result.CodeInsufficientBalance)
	}
	return result.OK
}

func (exec *WithdrawSalesTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.WithdrawSalesTx)

	escrow := view.GetEscrow(tx.ProjectID)
	escrow.SalesBalanceWei.Sub(escrow.SalesBalanceWei, tx.AmountWei)
	view.SetEscrow(escrow)
	subHeldFunds(view, tx.AmountWei)

	if err := exec.gateway.Send(tx.Recipient, tx.AmountWei); err != nil {
		logger.Warnf("Sales withdrawal of %v wei to %v failed: %v", tx.AmountWei, tx.Recipient, err)
		return result.ErrWithdrawFailed
	}

	view.Emit(types.SalesWithdrawnEvent{
		ProjectID: tx.ProjectID,
		Recipient: tx.Recipient,
		AmountWei: tx.AmountWei,
	})

	logger.Infof("Withdrew %v wei of sale proceeds from project %v to %v", tx.AmountWei, tx.ProjectID, tx.Recipient)
	return result.OK
}
