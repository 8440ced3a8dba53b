package execution

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger/assets"
	"github.com/helioshare/helioshare/ledger/auth"
	"github.com/helioshare/helioshare/ledger/rewards"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
	"github.com/helioshare/helioshare/store/database/backend"
)

var (
	admin   = common.HexToAddress("0xad")
	creator = common.HexToAddress("0xc1")
	buyerA  = common.HexToAddress("0xa1")
	buyerB  = common.HexToAddress("0xb2")
)

// mockGateway records payouts and can be switched to fail.
type mockGateway struct {
	failing bool
	payouts map[common.Address]*big.Int
}

func newMockGateway() *mockGateway {
	return &mockGateway{payouts: make(map[common.Address]*big.Int)}
}

func (g *mockGateway) Send(to common.Address, amountWei *big.Int) error {
	if g.failing {
		return errors.New("payment rail unavailable")
	}
	total, ok := g.payouts[to]
	if !ok {
		total = big.NewInt(0)
		g.payouts[to] = total
	}
	total.Add(total, amountWei)
	return nil
}

func (g *mockGateway) paid(to common.Address) *big.Int {
	if total, ok := g.payouts[to]; ok {
		return total
	}
	return big.NewInt(0)
}

type testEnv struct {
	exec    *Executor
	view    *st.StoreView
	engine  *rewards.Engine
	gateway *mockGateway
}

func newTestEnv() *testEnv {
	shares := assets.NewLedger()
	engine := rewards.NewEngine()
	shares.RegisterListener(engine)
	gateway := newMockGateway()

	return &testEnv{
		exec:    NewExecutor(auth.NewStaticOwner(admin), shares, engine, gateway),
		view:    st.NewStoreView(backend.NewMemDatabase()),
		engine:  engine,
		gateway: gateway,
	}
}

func (env *testEnv) createProject(t *testing.T, totalSupply uint64, priceWei int64, minPurchase uint64) uint64 {
	projectID := env.view.GetNextProjectID()
	res := env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor:   creator,
		Name:        "Rooftop Array 7",
		TotalSupply: totalSupply,
		PriceWei:    big.NewInt(priceWei),
		MinPurchase: minPurchase,
	})
	require.True(t, res.IsOK(), "create failed: %v", res)
	return projectID
}

func TestCreateProjectValidation(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()

	res := env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor: creator, Name: "x", TotalSupply: 0, PriceWei: big.NewInt(10), MinPurchase: 1})
	assert.Equal(result.CodeInvalidSupply, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor: creator, Name: "x", TotalSupply: 100, PriceWei: big.NewInt(0), MinPurchase: 1})
	assert.Equal(result.CodeInvalidPrice, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor: creator, Name: "x", TotalSupply: 100, PriceWei: big.NewInt(10), MinPurchase: 101})
	assert.Equal(result.CodeInvalidMinPurchase, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor: creator, Name: "x", TotalSupply: 100, PriceWei: big.NewInt(10), MinPurchase: 0})
	assert.Equal(result.CodeInvalidMinPurchase, res.Code)
}

func TestCreateProjectSequentialIDs(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()

	first := env.createProject(t, 100, 10, 1)
	second := env.createProject(t, 100, 10, 1)
	assert.Equal(first+1, second)

	project := env.view.GetProject(first)
	assert.True(project.Exists())
	assert.True(project.Active)
	assert.Equal(creator, project.Creator)

	meta := env.view.GetProjectMetadata(first)
	assert.Equal("Rooftop Array 7", meta.Name)
}

func TestCreateProjectOnBehalf(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()

	// Only the admin may create for another account.
	res := env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor: buyerA, Creator: creator, Name: "x",
		TotalSupply: 100, PriceWei: big.NewInt(10), MinPurchase: 1})
	assert.Equal(result.CodeUnauthorized, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.CreateProjectTx{
		Requestor: admin, Creator: creator, Name: "x",
		TotalSupply: 100, PriceWei: big.NewInt(10), MinPurchase: 1})
	assert.True(res.IsOK())
	assert.Equal(creator, env.view.GetProject(1).Creator)
}

func TestPurchaseBoundaries(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 5)

	// Below the minimum.
	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 4, PaymentWei: big.NewInt(40)})
	assert.Equal(result.CodeBelowMinimumPurchase, res.Code)

	// Exactly the minimum succeeds.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 5, PaymentWei: big.NewInt(50)})
	assert.True(res.IsOK())

	// Over the remaining supply, regardless of payment.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 96, PaymentWei: big.NewInt(10000)})
	assert.Equal(result.CodeInsufficientSupply, res.Code)

	// An amount near the uint64 ceiling must not wrap the minted count
	// past the cap.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: ^uint64(0) - 30, PaymentWei: big.NewInt(10000)})
	assert.Equal(result.CodeInsufficientSupply, res.Code)
	assert.Equal(uint64(5), env.view.GetProject(projectID).Minted)
	assert.Equal(uint64(5), env.view.GetBalance(projectID, buyerA))

	// Shares cannot be credited to the zero address.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		ProjectID: projectID, Amount: 10, PaymentWei: big.NewInt(100)})
	assert.Equal(result.CodeInvalidTransfer, res.Code)

	// Payment short of the cost.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 10, PaymentWei: big.NewInt(99)})
	assert.Equal(result.CodeInsufficientPayment, res.Code)

	// Inactive project.
	res = env.exec.ExecuteTx(env.view, &types.SetProjectStatusTx{
		Requestor: creator, ProjectID: projectID, Active: false})
	assert.True(res.IsOK())
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 10, PaymentWei: big.NewInt(100)})
	assert.Equal(result.CodeProjectNotActive, res.Code)

	// Unknown project.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: 99, Amount: 10, PaymentWei: big.NewInt(100)})
	assert.Equal(result.CodeProjectNotFound, res.Code)
}

func TestPurchaseRefundsExcess(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)

	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(450)})
	assert.True(res.IsOK())

	// Only the cost stays in custody; the excess went back to the buyer.
	assert.Equal(0, env.view.GetEscrow(projectID).SalesBalanceWei.Cmp(big.NewInt(400)))
	assert.Equal(0, env.view.GetHeldFunds().Cmp(big.NewInt(400)))
	assert.Equal(0, env.gateway.paid(buyerA).Cmp(big.NewInt(50)))
}

func TestPurchaseRefundFailureAborts(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)

	env.gateway.failing = true
	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(450)})
	assert.Equal(result.CodeRefundFailed, res.Code)

	// Exact payment needs no refund and is unaffected by the gateway.
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())
}

func TestDepositRevenueAuthorization(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)
	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())

	// Neither creator nor admin.
	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: buyerA, ProjectID: projectID, AmountWei: big.NewInt(100)})
	assert.Equal(result.CodeUnauthorized, res.Code)

	// The admin may deposit on any project.
	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: admin, ProjectID: projectID, AmountWei: big.NewInt(100)})
	assert.True(res.IsOK())
}

func TestDepositRevenueRejections(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)

	// No shares minted yet.
	res := env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: projectID, AmountWei: big.NewInt(100)})
	assert.Equal(result.CodeNoTokensMinted, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())

	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: projectID, AmountWei: big.NewInt(0)})
	assert.Equal(result.CodeNoFundsDeposited, res.Code)
}

func TestDepositRecordsEnergy(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)
	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())

	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: projectID, AmountWei: big.NewInt(100), EnergyKwh: 1250})
	assert.True(res.IsOK())
	assert.Equal(uint64(1250), env.view.GetProject(projectID).TotalEnergyKwh)
}

// The two-buyer scenario: 40 shares at price 10, deposit 400, 60 more
// shares, deposit 1000. The late buyer earns nothing from the first deposit.
func TestPurchaseDepositClaimScenario(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)

	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())
	assert.Equal(uint64(40), env.view.GetProject(projectID).Minted)
	assert.Equal(0, env.view.GetEscrow(projectID).SalesBalanceWei.Cmp(big.NewInt(400)))

	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: projectID, AmountWei: big.NewInt(400)})
	assert.True(res.IsOK())

	rps, _ := new(big.Int).SetString("10000000000000000000", 10) // 1e19
	assert.Equal(0, env.view.GetProject(projectID).RewardPerShareStored.Cmp(rps))
	assert.Equal(0, env.engine.Claimable(env.view, projectID, buyerA).Cmp(big.NewInt(400)))

	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerB, ProjectID: projectID, Amount: 60, PaymentWei: big.NewInt(600)})
	assert.True(res.IsOK())
	assert.Equal(uint64(100), env.view.GetProject(projectID).Minted)
	assert.Equal(0, env.engine.Claimable(env.view, projectID, buyerB).Cmp(big.NewInt(0)))

	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: projectID, AmountWei: big.NewInt(1000)})
	assert.True(res.IsOK())

	rps2, _ := new(big.Int).SetString("20000000000000000000", 10) // 2e19
	assert.Equal(0, env.view.GetProject(projectID).RewardPerShareStored.Cmp(rps2))
	assert.Equal(0, env.engine.Claimable(env.view, projectID, buyerA).Cmp(big.NewInt(800)))
	assert.Equal(0, env.engine.Claimable(env.view, projectID, buyerB).Cmp(big.NewInt(600)))

	// A claims: payout 800, custody drops accordingly.
	res = env.exec.ExecuteTx(env.view, &types.ClaimTx{Holder: buyerA, ProjectID: projectID})
	assert.True(res.IsOK())
	assert.Equal(0, env.gateway.paid(buyerA).Cmp(big.NewInt(800)))

	// Custody: escrow 1000 + deposits 1400 - claim 800.
	assert.Equal(0, env.view.GetHeldFunds().Cmp(big.NewInt(1600)))

	res = env.exec.ExecuteTx(env.view, &types.ClaimTx{Holder: buyerA, ProjectID: projectID})
	assert.Equal(result.CodeNothingToClaim, res.Code)
}

func TestClaimBatch(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()

	first := env.createProject(t, 100, 10, 1)
	second := env.createProject(t, 100, 10, 1)

	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: first, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())
	res = env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: second, Amount: 10, PaymentWei: big.NewInt(100)})
	assert.True(res.IsOK())

	// Revenue only on the first project; the second contributes zero and is
	// skipped, not fatal.
	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: first, AmountWei: big.NewInt(400)})
	assert.True(res.IsOK())

	res = env.exec.ExecuteTx(env.view, &types.ClaimBatchTx{
		Holder: buyerA, ProjectIDs: []uint64{first, second}})
	assert.True(res.IsOK())
	assert.Equal(0, env.gateway.paid(buyerA).Cmp(big.NewInt(400)))

	// Everything already claimed: the aggregate is zero.
	res = env.exec.ExecuteTx(env.view, &types.ClaimBatchTx{
		Holder: buyerA, ProjectIDs: []uint64{first, second}})
	assert.Equal(result.CodeNothingToClaim, res.Code)

	// Unknown project ids are fatal.
	res = env.exec.ExecuteTx(env.view, &types.ClaimBatchTx{
		Holder: buyerA, ProjectIDs: []uint64{first, 99}})
	assert.Equal(result.CodeProjectNotFound, res.Code)
}

func TestTransferShares(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)

	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())

	res = env.exec.ExecuteTx(env.view, &types.DepositRevenueTx{
		Requestor: creator, ProjectID: projectID, AmountWei: big.NewInt(400)})
	assert.True(res.IsOK())

	res = env.exec.ExecuteTx(env.view, &types.TransferSharesTx{
		From: buyerA, To: buyerB, ProjectIDs: []uint64{projectID}, Amounts: []uint64{10}})
	assert.True(res.IsOK())
	assert.Equal(uint64(30), env.view.GetBalance(projectID, buyerA))
	assert.Equal(uint64(10), env.view.GetBalance(projectID, buyerB))

	// The pre-transfer earnings stayed with the sender.
	assert.Equal(0, env.engine.Claimable(env.view, projectID, buyerA).Cmp(big.NewInt(400)))
	assert.Equal(0, env.engine.Claimable(env.view, projectID, buyerB).Cmp(big.NewInt(0)))

	// Insufficient balance is fatal.
	res = env.exec.ExecuteTx(env.view, &types.TransferSharesTx{
		From: buyerA, To: buyerB, ProjectIDs: []uint64{projectID}, Amounts: []uint64{31}})
	assert.Equal(result.CodeInsufficientBalance, res.Code)
}

func TestWithdrawSales(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)
	recipient := common.HexToAddress("0xfe")

	res := env.exec.ExecuteTx(env.view, &types.PurchaseTx{
		Buyer: buyerA, ProjectID: projectID, Amount: 40, PaymentWei: big.NewInt(400)})
	assert.True(res.IsOK())

	// Creator-only.
	res = env.exec.ExecuteTx(env.view, &types.WithdrawSalesTx{
		Requestor: buyerA, ProjectID: projectID, Recipient: recipient, AmountWei: big.NewInt(100)})
	assert.Equal(result.CodeUnauthorized, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.WithdrawSalesTx{
		Requestor: creator, ProjectID: projectID, Recipient: recipient, AmountWei: big.NewInt(0)})
	assert.Equal(result.CodeInvalidAmount, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.WithdrawSalesTx{
		Requestor: creator, ProjectID: projectID, Recipient: recipient, AmountWei: big.NewInt(401)})
	assert.Equal(result.CodeInsufficientBalance, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.WithdrawSalesTx{
		Requestor: creator, ProjectID: projectID, Recipient: recipient, AmountWei: big.NewInt(300)})
	assert.True(res.IsOK())
	assert.Equal(0, env.view.GetEscrow(projectID).SalesBalanceWei.Cmp(big.NewInt(100)))
	assert.Equal(0, env.view.GetHeldFunds().Cmp(big.NewInt(100)))
	assert.Equal(0, env.gateway.paid(recipient).Cmp(big.NewInt(300)))

	env.gateway.failing = true
	res = env.exec.ExecuteTx(env.view, &types.WithdrawSalesTx{
		Requestor: creator, ProjectID: projectID, Recipient: recipient, AmountWei: big.NewInt(100)})
	assert.Equal(result.CodeWithdrawFailed, res.Code)
}

func TestSetStatusAndTransferCreatorAuth(t *testing.T) {
	assert := assert.New(t)
	env := newTestEnv()
	projectID := env.createProject(t, 100, 10, 1)

	res := env.exec.ExecuteTx(env.view, &types.SetProjectStatusTx{
		Requestor: buyerA, ProjectID: projectID, Active: false})
	assert.Equal(result.CodeUnauthorized, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.SetProjectStatusTx{
		Requestor: creator, ProjectID: 99, Active: false})
	assert.Equal(result.CodeProjectNotFound, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.TransferCreatorTx{
		Requestor: creator, ProjectID: projectID, NewCreator: common.Address{}})
	assert.Equal(result.CodeInvalidCreator, res.Code)

	res = env.exec.ExecuteTx(env.view, &types.TransferCreatorTx{
		Requestor: creator, ProjectID: projectID, NewCreator: buyerB})
	assert.True(res.IsOK())
	assert.Equal(buyerB, env.view.GetProject(projectID).Creator)

	// The old creator lost the capability.
	res = env.exec.ExecuteTx(env.view, &types.SetProjectStatusTx{
		Requestor: creator, ProjectID: projectID, Active: false})
	assert.Equal(result.CodeUnauthorized, res.Code)
}
