package assets

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
	"github.com/helioshare/helioshare/store/database/backend"
)

type recordingListener struct {
	calls int
	from  common.Address
	to    common.Address
}

func (l *recordingListener) OnShareTransfer(view *st.StoreView, from common.Address, to common.Address, projectIDs []uint64, amounts []uint64) result.Result {
	l.calls++
	l.from = from
	l.to = to
	return result.OK
}

func newViewWithProject(totalSupply uint64) *st.StoreView {
	view := st.NewStoreView(backend.NewMemDatabase())
	view.SetProject(types.NewProject(1, common.HexToAddress("0xc1"), totalSupply, big.NewInt(10), 1, 1700000000))
	return view
}

func TestMint(t *testing.T) {
	assert := assert.New(t)
	holder := common.HexToAddress("0xa1")
	listener := &recordingListener{}

	shares := NewLedger()
	shares.RegisterListener(listener)
	view := newViewWithProject(100)

	res := shares.Mint(view, holder, 1, 40)
	assert.True(res.IsOK())
	assert.Equal(uint64(40), shares.BalanceOf(view, holder, 1))
	assert.Equal(uint64(40), view.GetProject(1).Minted)

	// The listener saw the mint-source sentinel before the credit.
	assert.Equal(1, listener.calls)
	assert.Equal(types.ZeroAddress, listener.from)
	assert.Equal(holder, listener.to)
}

func TestMintRejections(t *testing.T) {
	assert := assert.New(t)
	holder := common.HexToAddress("0xa1")
	shares := NewLedger()
	view := newViewWithProject(100)

	res := shares.Mint(view, holder, 1, 0)
	assert.Equal(result.CodeInvalidAmount, res.Code)

	res = shares.Mint(view, holder, 99, 10)
	assert.Equal(result.CodeProjectNotFound, res.Code)

	res = shares.Mint(view, holder, 1, 101)
	assert.Equal(result.CodeInsufficientSupply, res.Code)

	// An amount near the uint64 ceiling must not wrap the minted count
	// past the cap.
	res = shares.Mint(view, holder, 1, ^uint64(0)-30)
	assert.Equal(result.CodeInsufficientSupply, res.Code)
	assert.Equal(uint64(0), view.GetProject(1).Minted)
	assert.Equal(uint64(0), shares.BalanceOf(view, holder, 1))

	res = shares.Mint(view, common.Address{}, 1, 10)
	assert.Equal(result.CodeInvalidTransfer, res.Code)

	// Minting up to the cap exactly is fine; one more is not.
	res = shares.Mint(view, holder, 1, 100)
	assert.True(res.IsOK())
	res = shares.Mint(view, holder, 1, 1)
	assert.Equal(result.CodeInsufficientSupply, res.Code)
}

func TestTransferBatch(t *testing.T) {
	assert := assert.New(t)
	from := common.HexToAddress("0xa1")
	to := common.HexToAddress("0xb2")
	listener := &recordingListener{}

	shares := NewLedger()
	shares.RegisterListener(listener)
	view := newViewWithProject(100)

	res := shares.Mint(view, from, 1, 50)
	assert.True(res.IsOK())

	res = shares.TransferBatch(view, from, to, []uint64{1}, []uint64{20})
	assert.True(res.IsOK())
	assert.Equal(uint64(30), shares.BalanceOf(view, from, 1))
	assert.Equal(uint64(20), shares.BalanceOf(view, to, 1))
	assert.Equal(2, listener.calls)
}

func TestTransferBatchRejections(t *testing.T) {
	assert := assert.New(t)
	from := common.HexToAddress("0xa1")
	to := common.HexToAddress("0xb2")
	shares := NewLedger()
	view := newViewWithProject(100)

	res := shares.Mint(view, from, 1, 50)
	assert.True(res.IsOK())

	res = shares.TransferBatch(view, from, to, []uint64{1, 2}, []uint64{10})
	assert.Equal(result.CodeInvalidTransfer, res.Code)

	res = shares.TransferBatch(view, from, to, nil, nil)
	assert.Equal(result.CodeInvalidTransfer, res.Code)

	res = shares.TransferBatch(view, common.Address{}, to, []uint64{1}, []uint64{10})
	assert.Equal(result.CodeInvalidTransfer, res.Code)

	res = shares.TransferBatch(view, from, to, []uint64{1}, []uint64{0})
	assert.Equal(result.CodeInvalidAmount, res.Code)

	res = shares.TransferBatch(view, from, to, []uint64{99}, []uint64{10})
	assert.Equal(result.CodeProjectNotFound, res.Code)

	res = shares.TransferBatch(view, from, to, []uint64{1}, []uint64{51})
	assert.Equal(result.CodeInsufficientBalance, res.Code)

	// Nothing moved.
	assert.Equal(uint64(50), shares.BalanceOf(view, from, 1))
	assert.Equal(uint64(0), shares.BalanceOf(view, to, 1))
}

func TestTransferBatchDuplicateProjectIDs(t *testing.T) {
	assert := assert.New(t)
	from := common.HexToAddress("0xa1")
	to := common.HexToAddress("0xb2")
	shares := NewLedger()
	view := newViewWithProject(100)

	res := shares.Mint(view, from, 1, 40)
	assert.True(res.IsOK())

	// Each entry alone fits the balance of 40, but together they exceed it;
	// the sender's balance must not underflow.
	res = shares.TransferBatch(view, from, to, []uint64{1, 1}, []uint64{30, 30})
	assert.Equal(result.CodeInsufficientBalance, res.Code)
	assert.Equal(uint64(40), shares.BalanceOf(view, from, 1))
	assert.Equal(uint64(0), shares.BalanceOf(view, to, 1))

	// Duplicates that fit within the balance are fine.
	res = shares.TransferBatch(view, from, to, []uint64{1, 1}, []uint64{30, 10})
	assert.True(res.IsOK())
	assert.Equal(uint64(0), shares.BalanceOf(view, from, 1))
	assert.Equal(uint64(40), shares.BalanceOf(view, to, 1))
}
