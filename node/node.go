package node

import (
	"context"
	"sync"

	"github.com/spf13/viper"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/util"
	"github.com/helioshare/helioshare/ledger"
	"github.com/helioshare/helioshare/ledger/auth"
	"github.com/helioshare/helioshare/ledger/metadata"
	"github.com/helioshare/helioshare/ledger/treasury"
	"github.com/helioshare/helioshare/rpc"
	"github.com/helioshare/helioshare/store/database"
)

var logger = util.GetLoggerForModule("node")

// Node assembles the ledger and its services over a database.
type Node struct {
	Ledger    *ledger.Ledger
	Gate      *auth.SwitchGate
	rpcServer *rpc.HeliosRPCServer

	// Life cycle
	wg      *sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// Params carries the dependencies a node is assembled from.
type Params struct {
	DB database.Database
}

// NewNode creates a node from the given params and the viper configuration.
func NewNode(params *Params) *Node {
	owner := common.HexToAddress(viper.GetString(common.CfgLedgerOwner))
	authorizer := auth.NewStaticOwner(owner)
	gate := auth.NewSwitchGate(viper.GetBool(common.CfgLedgerPaused))
	gateway := treasury.NewBookGateway(params.DB)

	lgr := ledger.NewLedger(params.DB, authorizer, gate, gateway)

	node := &Node{
		Ledger: lgr,
		Gate:   gate,
		wg:     &sync.WaitGroup{},
	}

	if viper.GetBool(common.CfgRPCEnabled) {
		resolver, err := metadata.NewResolver(
			viper.GetString(common.CfgMetadataBaseURI),
			viper.GetInt(common.CfgMetadataCacheSize))
		if err != nil {
			logger.Fatalf("Failed to create metadata resolver: %v", err)
		}
		node.rpcServer = rpc.NewHeliosRPCServer(lgr, gate, resolver)
	}

	return node
}

// Start launches the node services.
func (n *Node) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	n.ctx = c
	n.cancel = cancel

	if n.rpcServer != nil {
		n.rpcServer.Start(n.ctx)
	}
}

// Stop shuts the node down.
func (n *Node) Stop() {
	n.cancel()
	n.stopped = true

	if n.rpcServer != nil {
		n.rpcServer.Stop()
	}
}

// Wait blocks until all node services have stopped.
func (n *Node) Wait() {
	if n.rpcServer != nil {
		n.rpcServer.Wait()
	}
	n.wg.Wait()
}
