// This file is part of Xray.
//
// Xray is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Xray is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Xray.  If not, see <https://www.gnu.org/licenses/>.

package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/logger"
	"github.com/trs-io/xray/version"
	"golang.org/x/net/websocket"
)

// Sentinal error patterns.
const (
	ServerError = "web: %v"
)

// DefaultAddress is the address the server listens on if none is given.
const DefaultAddress = ":8080"

// Endpoint paths.
const (
	DebugPath = "/channel"
	VIPath    = "/vi"
)

// Server serves the debugger and virtual I/O endpoints.
type Server struct {
	mux *http.ServeMux

	crit sync.Mutex
	open map[*websocket.Conn]bool
}

// NewServer is the preferred method of initialisation for the Server type.
// Either endpoint can be nil, in which case the path is not served.
func NewServer(debug Endpoint, vi Endpoint) *Server {
	srv := &Server{
		mux:  http.NewServeMux(),
		open: make(map[*websocket.Conn]bool),
	}
	if debug != nil {
		srv.mux.Handle(DebugPath, srv.handler(DebugPath, debug))
	}
	if vi != nil {
		srv.mux.Handle(VIPath, srv.handler(VIPath, vi))
	}
	return srv
}

// Handler returns the http.Handler for the server's endpoints.
func (srv *Server) Handler() http.Handler {
	return srv.mux
}

func (srv *Server) handler(path string, ep Endpoint) http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		srv.track(ws, true)
		defer srv.track(ws, false)

		if p := ws.Request().URL.Query().Get("protocol"); p != "" {
			ok, err := version.CompatibleProtocol(p)
			if err != nil {
				logger.Log(logger.Allow, "web", err)
			} else if !ok {
				logger.Logf(logger.Allow, "web", "%s: client protocol %s may not be compatible with %s", path, p, version.Protocol)
			}
		}

		c := &conn{ws: ws}
		ep.Attach(c)
		defer ep.Detach(c)

		logger.Logf(logger.Allow, "web", "%s: client connected from %s", path, ws.Request().RemoteAddr)

		for {
			var msg string
			if err := websocket.Message.Receive(ws, &msg); err != nil {
				logger.Logf(logger.Allow, "web", "%s: client disconnected: %v", path, err)
				return
			}
			ep.HandleMessage(msg)
		}
	})
}

func (srv *Server) track(ws *websocket.Conn, open bool) {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if open {
		srv.open[ws] = true
	} else {
		delete(srv.open, ws)
	}
}

// closeAll closes every open websocket connection. the http server does not
// close hijacked connections on shutdown
func (srv *Server) closeAll() {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	for ws := range srv.open {
		ws.Close()
	}
}

// ListenAndServe listens on the address and serves the endpoints. Blocks until
// the context is cancelled.
func (srv *Server) ListenAndServe(ctx context.Context, address string) error {
	if address == "" {
		address = DefaultAddress
	}

	l, err := net.Listen("tcp", address)
	if err != nil {
		return curated.Errorf(ServerError, err)
	}

	return srv.Serve(ctx, l)
}

// Serve the endpoints on the listener. Blocks until the context is cancelled.
func (srv *Server) Serve(ctx context.Context, l net.Listener) error {
	hs := &http.Server{
		Handler:           srv.mux,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	done := make(chan error, 1)
	go func() {
		done <- hs.Serve(l)
	}()

	logger.Logf(logger.Allow, "web", "serving on %s", l.Addr())

	select {
	case err := <-done:
		return curated.Errorf(ServerError, err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := hs.Shutdown(sctx)
	srv.closeAll()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf(ServerError, err)
	}
	return nil
}
