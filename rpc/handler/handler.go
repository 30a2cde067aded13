// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP handlers behind the HTTPS listener
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/inheritd/counter"
	"github.com/bitmark-inc/inheritd/mode"
	"github.com/bitmark-inc/logger"
)

// request paths
const (
	RPCPath     = "/inheritd/rpc"
	DetailsPath = "/inheritd/details"
)

// Handler - the routes served over HTTPS
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	count              *counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
}

// New - handlers sharing one connection count
func New(log *logger.L, server *rpc.Server, start time.Time, version string, count *counter.Counter, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		count:              count,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - replace the access lists, keyed by "details"
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - one JSON-RPC call per POST
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	defer h.count.Decrement()
	if h.count.Increment() > h.maximumConnections {
		sendTooManyRequests(w)
		return
	}

	codec := jsonrpc.NewServerCodec(&connection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Debugf("rpc request error: %s", err)
		sendInternalServerError(w)
	}
}

// DetailsReply - node status page
type DetailsReply struct {
	Chain   string `json:"chain"`
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Details - GET form of Node.Info, restricted by the "details" list
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("details", r.RemoteAddr) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	defer h.count.Decrement()
	if h.count.Increment() > h.maximumConnections {
		sendTooManyRequests(w)
		return
	}

	sendReply(w, DetailsReply{
		Chain:   mode.ChainName(),
		Mode:    mode.String(),
		RPCs:    h.count.Uint64(),
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
	})
}

func (h *handler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()
	for _, cidr := range h.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// adapts a request body and response writer for the rpc codec
type connection struct {
	in  io.Reader
	out io.Writer
}

func (c *connection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *connection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}

func (c *connection) Close() error {
	return nil
}

func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

type errorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(errorReply{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
