package treasury

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/helioshare/helioshare/common"
	logutil "github.com/helioshare/helioshare/common/util"
	"github.com/helioshare/helioshare/store"
	"github.com/helioshare/helioshare/store/database"
	"github.com/helioshare/helioshare/store/kvstore"
)

var logger = logutil.GetLoggerForModule("treasury")

// Gateway performs external value transfers out of ledger custody. Claim
// payouts, purchase refunds and sales withdrawals all go through it; a
// failed Send aborts the surrounding ledger operation in full.
type Gateway interface {
	Send(to common.Address, amountWei *big.Int) error
}

// BookGateway is the default gateway: it records cumulative outflows per
// recipient in a settlement book, leaving the actual money movement to the
// operator's payment rail reconciling against the book.
type BookGateway struct {
	book store.Store
}

// NewBookGateway creates a settlement-book gateway over the given database.
func NewBookGateway(db database.Database) *BookGateway {
	return &BookGateway{
		book: kvstore.NewKVStore(db),
	}
}

// Send credits the recipient's cumulative outflow in the settlement book.
func (g *BookGateway) Send(to common.Address, amountWei *big.Int) error {
	if to.IsEmpty() {
		return errors.New("cannot pay out to the zero address")
	}
	if amountWei == nil || amountWei.Sign() <= 0 {
		return errors.New("payout amount must be positive")
	}

	total, err := g.TotalPaid(to)
	if err != nil {
		return err
	}
	total.Add(total, amountWei)
	if err := g.book.Put(outflowKey(to), total); err != nil {
		return errors.Wrap(err, "failed to record payout")
	}

	logger.Infof("Paid out %v wei to %v, lifetime total: %v", amountWei, to, total)
	return nil
}

// TotalPaid returns the recipient's lifetime outflow total.
func (g *BookGateway) TotalPaid(to common.Address) (*big.Int, error) {
	total := new(big.Int)
	err := g.book.Get(outflowKey(to), total)
	if err != nil {
		if err == store.ErrKeyNotFound {
			return big.NewInt(0), nil
		}
		return nil, err
	}
	return total, nil
}

func outflowKey(to common.Address) []byte {
	return append(common.Bytes("tb/out/"), to[:]...)
}
