// Package mcp exposes the indexed corpus to Model Context Protocol
// clients. Tools cover search, lookup, related-document queries,
// taxonomy listings and rebuilds; resources mirror the documents
// themselves under the docdex:// scheme.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion is reported to clients during the MCP handshake.
const serverVersion = "0.1.0"

// instructions tells connecting clients how the tool set fits together.
const instructions = `docdex indexes a directory of markdown documentation.
Use search_documents to find documents by keyword, get_document to read one,
and get_related_documents to walk the relationship graph between them.
list_categories and list_tags describe the corpus taxonomy; rebuild_index
re-reads the corpus from disk. Documents are also readable as resources
under the docdex:// scheme.`

// shutdownGrace bounds how long RunHTTP waits for in-flight requests
// after its context is cancelled.
const shutdownGrace = 5 * time.Second

// readHeaderTimeout guards the HTTP listener against connections that
// never finish sending headers.
const readHeaderTimeout = 10 * time.Second

// Server wraps an mcp.Server with the docdex tool and resource set.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer validates the ports and registers every tool and resource.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("mcp server: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "docdex",
		Version: serverVersion,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr. Cancelling the
// context drains in-flight requests before returning.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
