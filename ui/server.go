package ui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edujbarrios/real-iop-estimator/app"
	"github.com/edujbarrios/real-iop-estimator/internal"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Server is the thin presentation shell over the estimation service. It
// holds no algorithmic content; handlers delegate to the service and
// translate errors.
type Server struct {
	router    *gin.Engine
	service   *app.EstimationService
	logger    *internal.Logger
	templates *template.Template
}

// NewServer creates the web server and registers all routes.
func NewServer(cfg *config.Config, service *app.EstimationService, logger *internal.Logger) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedTemplates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		service:   service,
		logger:    logger,
		templates: templates,
	}
	s.router.Use(gin.Recovery())
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupRoutes wires the HTTP surface
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api/v1")
	api.POST("/estimate", s.handleEstimate)
}

// Router exposes the handler for an http.Server or a test client.
func (s *Server) Router() http.Handler {
	return s.router
}
