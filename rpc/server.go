package rpc

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/net/netutil"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/common/util"
	"github.com/helioshare/helioshare/ledger"
	"github.com/helioshare/helioshare/ledger/auth"
	"github.com/helioshare/helioshare/ledger/metadata"
)

var logger *log.Entry

// HeliosRPCService exposes the ledger's operations and queries over JSON-RPC.
type HeliosRPCService struct {
	ledger   *ledger.Ledger
	gate     *auth.SwitchGate
	resolver *metadata.Resolver

	// Life cycle
	wg      *sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// HeliosRPCServer is an instance of RPC service.
type HeliosRPCServer struct {
	*HeliosRPCService

	server     *http.Server
	dispatcher *Dispatcher
	router     *mux.Router
	listener   net.Listener
}

// NewHeliosRPCServer creates a new instance of HeliosRPCServer.
func NewHeliosRPCServer(lgr *ledger.Ledger, gate *auth.SwitchGate, resolver *metadata.Resolver) *HeliosRPCServer {
	t := &HeliosRPCServer{
		HeliosRPCService: &HeliosRPCService{
			wg: &sync.WaitGroup{},
		},
	}

	t.ledger = lgr
	t.gate = gate
	t.resolver = resolver

	t.dispatcher = NewDispatcher()
	t.dispatcher.RegisterName("helioshare", t.HeliosRPCService)

	timeout := viper.GetDuration(common.CfgRPCTimeoutSecs) * time.Second
	t.router = mux.NewRouter()
	t.router.Handle("/", &defaultHTTPHandler{})
	t.router.Handle("/rpc", http.TimeoutHandler(t.dispatcher, timeout, "Request timed out"))

	t.server = &http.Server{
		Handler: t.router,
	}

	logger = util.GetLoggerForModule("rpc")

	return t
}

// Start creates the main goroutine.
func (t *HeliosRPCServer) Start(ctx context.Context) {
	c, cancel := context.WithCancel(ctx)
	t.ctx = c
	t.cancel = cancel

	t.wg.Add(1)
	go t.mainLoop()
}

func (t *HeliosRPCServer) mainLoop() {
	defer t.wg.Done()

	go t.serve()

	<-t.ctx.Done()
	t.stopped = true
	t.server.Shutdown(t.ctx)
}

func (t *HeliosRPCServer) serve() {
	address := viper.GetString(common.CfgRPCAddress)
	port := viper.GetString(common.CfgRPCPort)
	l, err := net.Listen("tcp", address+":"+port)
	if err != nil {
		logger.Fatalf("Failed to create listener: %v", err)
	} else {
		logger.Infof("RPC server listening on %v", l.Addr())
	}
	defer l.Close()

	ll := netutil.LimitListener(l, viper.GetInt(common.CfgRPCMaxConnections))
	t.listener = ll

	logger.Info(t.server.Serve(ll))
}

// Stop shuts down the RPC server.
func (t *HeliosRPCServer) Stop() {
	t.cancel()
}

// Wait blocks until the server has shut down.
func (t *HeliosRPCServer) Wait() {
	t.wg.Wait()
}

type defaultHTTPHandler struct {
}

func (dh *defaultHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("helioshare RPC endpoint is at /rpc"))
}
