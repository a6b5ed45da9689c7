// Package server exposes the tabscan services over a JSON HTTP API.
package server

import (
	"net/http"

	"github.com/tabscan/tabscan/internal/auth"
	"github.com/tabscan/tabscan/internal/middleware"
	"github.com/tabscan/tabscan/internal/service"
)

// Server routes HTTP requests to the tabscan services.
type Server struct {
	scans      *service.ScanService
	tabs       *service.TabService
	auth       *service.AuthService
	jwtManager *auth.JWTManager
	mux        *http.ServeMux
}

// New creates a Server with all routes registered on a fresh mux.
func New(scans *service.ScanService, tabs *service.TabService, authSvc *service.AuthService, jwtManager *auth.JWTManager) *Server {
	s := &Server{
		scans:      scans,
		tabs:       tabs,
		auth:       authSvc,
		jwtManager: jwtManager,
		mux:        http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the full middleware chain around the mux.
func (s *Server) Handler() http.Handler {
	return middleware.Logging(middleware.CORS(s.mux))
}

func (s *Server) registerRoutes() {
	s.public("POST /api/v1/auth/register", s.handleRegister)
	s.public("POST /api/v1/auth/login", s.handleLogin)

	// Pure compute endpoints: usable without an account.
	s.optionalAuth("POST /api/v1/scan", s.handleScan)
	s.public("POST /api/v1/split/equal", s.handleEqualSplit)
	s.public("POST /api/v1/split/settle", s.handleSettle)

	// History endpoints require an account.
	s.requireAuth("GET /api/v1/scans", s.handleListScans)
	s.requireAuth("POST /api/v1/tabs", s.handleCreateTab)
	s.requireAuth("GET /api/v1/tabs", s.handleListTabs)
	s.requireAuth("GET /api/v1/tabs/{id}", s.handleGetTab)
}

func (s *Server) public(pattern string, h http.HandlerFunc) {
	s.mux.Handle(pattern, middleware.Metrics(pattern, h))
}

func (s *Server) optionalAuth(pattern string, h http.HandlerFunc) {
	s.mux.Handle(pattern, middleware.Metrics(pattern, middleware.OptionalAuth(s.jwtManager, h)))
}

func (s *Server) requireAuth(pattern string, h http.HandlerFunc) {
	s.mux.Handle(pattern, middleware.Metrics(pattern, middleware.RequireAuth(s.jwtManager, h)))
}
