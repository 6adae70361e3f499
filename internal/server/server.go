// Package server exposes the header pipeline over localhost HTTP so editor
// plugins without a Go runtime can call into it.
package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/marwest/doxgen/internal/command"
	"github.com/marwest/doxgen/internal/editor"
	"github.com/marwest/doxgen/internal/header"
	"github.com/marwest/doxgen/internal/signature"
)

// The matcher is stateless; one instance serves all requests.
var signatureMatcher = signature.NewMatcher()

// Server wraps an Echo instance serving the header API.
type Server struct {
	engine *echo.Echo
	gen    *header.Generator
}

// New creates the server and registers its routes.
func New(gen *header.Generator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{engine: e, gen: gen}

	e.Use(requestID)
	e.POST("/v1/header", s.handleHeader)
	e.POST("/v1/insert", s.handleInsert)
	e.GET("/v1/health", s.handleHealth)

	return s
}

// requestID attaches a correlation ID to every response.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("X-Request-Id", uuid.NewString())
		return next(c)
	}
}

type headerRequest struct {
	Text string `json:"text"`
}

type headerResponse struct {
	Header string `json:"header"`
}

type insertRequest struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
}

type insertResponse struct {
	Source string `json:"source"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// captureSink collects the diagnostic for the current request so it can be
// returned in the response body.
type captureSink struct {
	message string
}

func (s *captureSink) Report(message string) {
	s.message = message
}

// handleHeader generates a header block for a signature supplied as raw text.
// Multi-line signatures are supported; send the wrapped lines as-is.
func (s *Server) handleHeader(c echo.Context) error {
	var req headerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	buf := editor.NewBuffer(req.Text)
	originalLines := buf.LineCount()
	sink := &captureSink{}
	cmd := command.NewInsertHeader(signatureMatcher, s.gen, sink)

	switch cmd.Execute(buf, 0) {
	case command.Inserted:
		// The header is everything above the original first line.
		inserted := buf.LineCount() - originalLines
		var block string
		for i := 0; i < inserted; i++ {
			block += buf.Line(i) + "\n"
		}
		return c.JSON(http.StatusOK, headerResponse{Header: block})
	case command.NoMatch:
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: sink.message})
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "empty request"})
	}
}

// handleInsert inserts a header into full source text at the given zero-based
// line and returns the modified source.
func (s *Server) handleInsert(c echo.Context) error {
	var req insertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	buf := editor.NewBuffer(req.Source)
	sink := &captureSink{}
	cmd := command.NewInsertHeader(signatureMatcher, s.gen, sink)

	switch cmd.Execute(buf, req.Line) {
	case command.Inserted:
		return c.JSON(http.StatusOK, insertResponse{Source: buf.String()})
	case command.NoMatch:
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: sink.message})
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "line out of range"})
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving on the given address.
func (s *Server) Start(addr string) error {
	return s.engine.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.engine.Shutdown(ctx)
}
