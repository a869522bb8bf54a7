package rpc

import (
	"encoding/json"
	"net"
	"time"

	"base58kit/util/log"

	"github.com/valyala/fasthttp"
)

// Options configures a Server.
type Options struct {
	// MaxInputSize is the largest payload in bytes accepted by encode and
	// returned by decode.
	MaxInputSize int
	// Digest is used by encode when the request does not name one.
	Digest string
	// Format is used when the request does not name a payload format.
	Format string
}

// Server serves the codec over JSON-RPC 2.0.
type Server struct {
	opts    Options
	methods map[string]methodFunc
	server  *fasthttp.Server
}

// NewServer creates a server, call Serve or ListenAndServe to start it.
func NewServer(opts Options) *Server {
	s := &Server{opts: opts}

	s.methods = map[string]methodFunc{
		"encode":   s.encode,
		"decode":   s.decode,
		"validate": s.validate,
	}

	s.server = &fasthttp.Server{
		Name:               "base58kit",
		Handler:            s.handle,
		MaxRequestBodySize: 4*opts.MaxInputSize + 1024,
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		IdleTimeout:        time.Minute,
	}

	return s
}

// ListenAndServe serves requests on the TCP address addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Infof("JSON-RPC server listening on %s", addr)
	return s.server.ListenAndServe(addr)
}

// Serve serves requests from ln.
func (s *Server) Serve(ln net.Listener) error {
	return s.server.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("only POST is allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	var req request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.reply(ctx, nil, nil, newError(CodeParseError, "parse error: %v", err))
		return
	}

	if req.JSONRPC != jsonRPCVersion || req.Method == "" {
		s.reply(ctx, req.ID, nil, newError(CodeInvalidRequest, "invalid request"))
		return
	}

	method, ok := s.methods[req.Method]
	if !ok {
		s.reply(ctx, req.ID, nil, newError(CodeMethodNotFound, "method %q not found", req.Method))
		return
	}

	var params []string
	if len(req.Params) != 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.reply(ctx, req.ID, nil, newError(CodeInvalidParams, "params must be an array of strings"))
			return
		}
	}

	log.Debugf("%s request from %s", req.Method, ctx.RemoteAddr())

	result, rpcErr := method(params)
	if rpcErr != nil {
		log.Warnf("%s request from %s failed: %s", req.Method, ctx.RemoteAddr(), rpcErr.Message)
	}

	s.reply(ctx, req.ID, result, rpcErr)
}

func (s *Server) reply(ctx *fasthttp.RequestCtx, id json.RawMessage, result interface{}, rpcErr *Error) {
	resp := response{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Result:  result,
		Error:   rpcErr,
	}

	body, err := json.Marshal(resp)
	if err != nil {
		log.Error(err)
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
