package execution

import (
	"math/big"

	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger/assets"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// PurchaseTxExecutor implements the TxExecutor interface
type PurchaseTxExecutor struct {
	shares  *assets.Ledger
	gateway treasury.Gateway
}

// NewPurchaseTxExecutor creates a new instance of PurchaseTxExecutor
func NewPurchaseTxExecutor(shares *assets.Ledger, gateway treasury.Gateway) *PurchaseTxExecutor {
	return &PurchaseTxExecutor{
		shares:  shares,
		gateway: gateway,
	}
}

func (exec *PurchaseTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.PurchaseTx)

	if tx.Buyer.IsEmpty() {
		return result.Error("buyer address cannot be empty").
			WithErrorCode(result.CodeInvalidTransfer)
	}
	project, res := getExistingProject(view, tx.ProjectID)
	if res.IsError() {
		return res
	}
	if !project.Active {
		return result.ErrProjectNotActive
	}
	if tx.Amount < project.MinPurchase {
		return result.Error("purchase of %v shares is below the minimum of %v",
			tx.Amount, project.MinPurchase).WithErrorCode(result.CodeBelowMinimumPurchase)
	}
	// Compared against the remaining supply so a near-ceiling amount cannot
	// wrap the minted count past the cap.
	if tx.Amount > project.AvailableSupply() {
		return result.Error("purchase of %v shares exceeds the remaining supply of %v",
			tx.Amount, project.AvailableSupply()).WithErrorCode(result.CodeInsufficientSupply)
	}

	cost := purchaseCost(project, tx.Amount)
	if tx.PaymentWei == nil || tx.PaymentWei.Cmp(cost) < 0 {
		return result.ErrInsufficientPayment
	}
	return result.OK
}

func (exec *PurchaseTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.PurchaseTx)

	project := view.GetProject(tx.ProjectID)
	cost := purchaseCost(project, tx.Amount)

	// Mint syncs the buyer's reward checkpoint before crediting the balance,
	// so the buyer earns nothing from deposits made before this purchase.
	res := exec.shares.Mint(view, tx.Buyer, tx.ProjectID, tx.Amount)
	if res.IsError() {
		return res
	}

	escrow := view.GetEscrow(tx.ProjectID)
	escrow.SalesBalanceWei.Add(escrow.SalesBalanceWei, cost)
	view.SetEscrow(escrow)
	addHeldFunds(view, cost)

	// Excess payment goes straight back. A stuck excess must not silently
	// become a gift, so a failed refund aborts the whole purchase.
	excess := new(big.Int).Sub(tx.PaymentWei, cost)
	if excess.Sign() > 0 {
		if err := exec.gateway.Send(tx.Buyer, excess); err != nil {
			logger.Warnf("Refund of %v wei to buyer %v failed: %v", excess, tx.Buyer, err)
			return result.ErrRefundFailed
		}
	}

	view.Emit(types.SharesMintedEvent{
		ProjectID: tx.ProjectID,
		Holder:    tx.Buyer,
		Amount:    tx.Amount,
		CostWei:   cost,
	})

	logger.Infof("Buyer %v purchased %v shares of project %v for %v wei", tx.Buyer, tx.Amount, tx.ProjectID, cost)
	return result.OK
}

func purchaseCost(project *types.Project, amount uint64) *big.Int {
	return new(big.Int).Mul(project.PriceWei, new(big.Int).SetUint64(amount))
}
