package rpc

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/result"
	"github.com/helioshare/helioshare/ledger"
	"github.com/helioshare/helioshare/ledger/auth"
	"github.com/helioshare/helioshare/ledger/metadata"
	"github.com/helioshare/helioshare/store/database/backend"
)

type stubGateway struct{}

func (g *stubGateway) Send(to common.Address, amountWei *big.Int) error {
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	gate := auth.NewSwitchGate(false)
	lgr := ledger.NewLedger(backend.NewMemDatabase(),
		auth.NewStaticOwner(common.HexToAddress("0xad")), gate, &stubGateway{})
	resolver, err := metadata.NewResolver("https://meta.example.com/projects/", 16)
	require.Nil(t, err)

	server := NewHeliosRPCServer(lgr, gate, resolver)
	ts := httptest.NewServer(server.router)
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method string, params interface{}) jsonrpcResponse {
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.Nil(t, err)

	httpRes, err := http.Post(ts.URL+"/rpc", "application/json", bytes.NewReader(body))
	require.Nil(t, err)
	defer httpRes.Body.Close()

	var res jsonrpcResponse
	require.Nil(t, json.NewDecoder(httpRes.Body).Decode(&res))
	return res
}

func TestRPCCreateAndQueryProject(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(t)

	res := call(t, ts, "helioshare.CreateProject", CreateProjectArgs{
		Requestor:   common.HexToAddress("0xc1"),
		Name:        "Rooftop Array 7",
		TotalSupply: 100,
		PriceWei:    big.NewInt(10),
		MinPurchase: 1,
	})
	require.Nil(t, res.Error, "create failed: %+v", res.Error)

	created := CreateProjectResult{}
	require.Nil(t, remarshal(res.Result, &created))
	assert.Equal(uint64(1), created.ProjectID)

	res = call(t, ts, "helioshare.GetProject", GetProjectArgs{ProjectID: created.ProjectID})
	require.Nil(t, res.Error)

	project := GetProjectResult{}
	require.Nil(t, remarshal(res.Result, &project))
	assert.Equal("Rooftop Array 7", project.Name)
	assert.Equal(uint64(100), project.AvailableSupply)
	assert.Equal("https://meta.example.com/projects/1", project.MetadataURI)
}

func TestRPCErrorCarriesLedgerCode(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(t)

	res := call(t, ts, "helioshare.GetProject", GetProjectArgs{ProjectID: 42})
	require.NotNil(t, res.Error)
	assert.Equal(int(result.CodeProjectNotFound), res.Error.Code)
}

func TestRPCUnknownMethod(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(t)

	res := call(t, ts, "helioshare.NoSuchMethod", GetStatusArgs{})
	require.NotNil(t, res.Error)
	assert.Equal(-32601, res.Error.Code)
}

func TestRPCAcceptsParamsArray(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(t)

	// ybbus-style clients wrap the args object in an array.
	res := call(t, ts, "helioshare.GetStatus", []interface{}{GetStatusArgs{}})
	require.Nil(t, res.Error)

	status := GetStatusResult{}
	require.Nil(t, remarshal(res.Result, &status))
	assert.Equal(uint64(1), status.NextProjectID)
	assert.False(status.Paused)
}

func TestRPCPauseGate(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(t)

	res := call(t, ts, "helioshare.SetPaused", SetPausedArgs{Paused: true})
	require.Nil(t, res.Error)

	res = call(t, ts, "helioshare.CreateProject", CreateProjectArgs{
		Requestor: common.HexToAddress("0xc1"), Name: "x",
		TotalSupply: 10, PriceWei: big.NewInt(1), MinPurchase: 1})
	require.NotNil(t, res.Error)
	assert.Equal(int(result.CodePaused), res.Error.Code)
}

// remarshal converts a decoded generic result into a typed one.
func remarshal(from interface{}, to interface{}) error {
	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, to)
}
