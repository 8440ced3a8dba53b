package rpc

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/helioshare/helioshare/common/result"
)

// JSON-RPC 2.0 over HTTP POST. Service methods follow the net/rpc
// convention, func (s *Svc) Name(args *Args, result *Result) error, and are
// registered under "<name>.<Method>". Params may be a single object or an
// array holding one object.

const jsonrpcVersion = "2.0"

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

// RPCError is the error member of a JSON-RPC response. Ledger failures carry
// their result code so callers can branch on named conditions.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%v (code: %v)", e.Message, e.Code)
}

// resultToError converts a failed ledger result into an RPC error.
func resultToError(res result.Result) error {
	return &RPCError{Code: int(res.Code), Message: res.Message}
}

type jsonrpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type serviceMethod struct {
	rcvr     reflect.Value
	method   reflect.Method
	argsType reflect.Type
	resType  reflect.Type
}

// Dispatcher routes JSON-RPC method calls to registered service methods.
type Dispatcher struct {
	mu      sync.RWMutex
	methods map[string]*serviceMethod
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		methods: make(map[string]*serviceMethod),
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// RegisterName registers every method of the receiver matching the net/rpc
// signature under "<name>.<Method>".
func (d *Dispatcher) RegisterName(name string, rcvr interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rv := reflect.ValueOf(rcvr)
	rt := reflect.TypeOf(rcvr)
	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		mtype := method.Type
		// receiver + two pointer args, one error return
		if mtype.NumIn() != 3 || mtype.NumOut() != 1 {
			continue
		}
		if mtype.In(1).Kind() != reflect.Ptr || mtype.In(2).Kind() != reflect.Ptr {
			continue
		}
		if mtype.Out(0) != errType {
			continue
		}
		d.methods[name+"."+method.Name] = &serviceMethod{
			rcvr:     rv,
			method:   method,
			argsType: mtype.In(1).Elem(),
			resType:  mtype.In(2).Elem(),
		}
	}
}

// ServeHTTP handles one JSON-RPC request per HTTP POST.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST method required", http.StatusMethodNotAllowed)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeResponse(w, jsonrpcResponse{JSONRPC: jsonrpcVersion, Error: &RPCError{Code: -32700, Message: "failed to read request body"}})
		return
	}

	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeResponse(w, jsonrpcResponse{JSONRPC: jsonrpcVersion, Error: &RPCError{Code: -32700, Message: "invalid JSON request"}})
		return
	}

	resp := jsonrpcResponse{JSONRPC: jsonrpcVersion, ID: req.ID}

	d.mu.RLock()
	sm, ok := d.methods[req.Method]
	d.mu.RUnlock()
	if !ok {
		resp.Error = &RPCError{Code: -32601, Message: fmt.Sprintf("method %v not found", req.Method)}
		writeResponse(w, resp)
		return
	}

	args := reflect.New(sm.argsType)
	if err := unmarshalParams(req.Params, args.Interface()); err != nil {
		resp.Error = &RPCError{Code: -32602, Message: fmt.Sprintf("invalid params: %v", err)}
		writeResponse(w, resp)
		return
	}

	res := reflect.New(sm.resType)
	out := sm.method.Func.Call([]reflect.Value{sm.rcvr, args, res})
	if errv := out[0].Interface(); errv != nil {
		callErr := errv.(error)
		if rpcErr, ok := callErr.(*RPCError); ok {
			resp.Error = rpcErr
		} else {
			resp.Error = &RPCError{Code: -32603, Message: callErr.Error()}
		}
		writeResponse(w, resp)
		return
	}

	resp.Result = res.Interface()
	writeResponse(w, resp)
}

// unmarshalParams accepts either a params object or an array holding one.
func unmarshalParams(params json.RawMessage, args interface{}) error {
	trimmed := strings.TrimSpace(string(params))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []json.RawMessage
		if err := json.Unmarshal(params, &list); err != nil {
			return err
		}
		if len(list) == 0 {
			return nil
		}
		return json.Unmarshal(list[0], args)
	}
	return json.Unmarshal(params, args)
}

func writeResponse(w http.ResponseWriter, resp jsonrpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
