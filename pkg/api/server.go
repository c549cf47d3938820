// Package api is the HTTP surface of the service: the upload entry point,
// the coordinator RPC endpoints, the plan/sheet read API, health, and the
// WebSocket event stream.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/database"
	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/orchestrator"
	"github.com/plandeck/plandeck/pkg/queue"
	"github.com/plandeck/plandeck/pkg/services"
	"github.com/plandeck/plandeck/pkg/storage"
)

// Server bundles the handler dependencies.
type Server struct {
	dbClient     *database.Client
	blobs        storage.BlobStore
	coordinator  *coordinator.Coordinator
	orchestrator *orchestrator.Orchestrator
	planService  *services.PlanService
	sheetService *services.SheetService
	workerPool   *queue.WorkerPool
	connManager  *events.ConnectionManager

	httpServer *http.Server
}

// NewServer creates a new API server. workerPool and connManager may be nil
// (their endpoints respond 503).
func NewServer(
	dbClient *database.Client,
	blobs storage.BlobStore,
	coord *coordinator.Coordinator,
	orch *orchestrator.Orchestrator,
	planService *services.PlanService,
	sheetService *services.SheetService,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	return &Server{
		dbClient:     dbClient,
		blobs:        blobs,
		coordinator:  coord,
		orchestrator: orch,
		planService:  planService,
		sheetService: sheetService,
		workerPool:   workerPool,
		connManager:  connManager,
	}
}

// Routes builds the echo instance with all endpoints registered.
func (s *Server) Routes() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/uploads", s.uploadHandler)

	v1.GET("/plans", s.listPlansHandler)
	v1.GET("/plans/:planId", s.getPlanHandler)
	v1.GET("/plans/:planId/state", s.getStateHandler)
	v1.GET("/plans/:planId/progress", s.getProgressHandler)
	v1.GET("/plans/:planId/sheets", s.listSheetsHandler)

	// Coordinator RPC surface. In-process workers call the coordinator
	// directly; these endpoints expose the same operations over HTTP.
	v1.POST("/plans/:planId/initialize", s.initializeHandler)
	v1.POST("/plans/:planId/sheetImageGenerated", s.sheetImageGeneratedHandler)
	v1.POST("/plans/:planId/sheetMetadataExtracted", s.sheetMetadataExtractedHandler)
	v1.POST("/plans/:planId/sheetCalloutsDetected", s.sheetCalloutsDetectedHandler)
	v1.POST("/plans/:planId/sheetLayoutDetected", s.sheetLayoutDetectedHandler)
	v1.POST("/plans/:planId/sheetTilesGenerated", s.sheetTilesGeneratedHandler)
	v1.POST("/plans/:planId/markFailed", s.markFailedHandler)

	return e
}

// Start serves HTTP on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
