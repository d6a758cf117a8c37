// Package server exposes the KuDE renderer over HTTP.
package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sifenlabs/kude/internal/model"
	"github.com/sifenlabs/kude/internal/render"
)

// Logo file names looked up under the media directory, one per
// document kind.
const (
	invoiceLogoFile    = "logoFactura.png"
	creditNoteLogoFile = "logoNotaCredito.png"
)

// Config holds server configuration
type Config struct {
	Address      string
	MediaDir     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	generator *render.Generator
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:    config,
		router:    router,
		generator: render.NewGenerator(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/pdf")
	{
		api.POST("/factura", s.handleRender(invoiceLogoFile))
		api.POST("/notacredito", s.handleRender(creditNoteLogoFile))
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleRender builds the endpoint handler for one logo variant. The
// layout itself follows the document type inside the XML, so the two
// endpoints differ only in which logo file they try to load.
func (s *Server) handleRender(logoFile string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RenderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 0, Message: "invalid request: " + err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		logo := s.loadLogo(logoFile)
		pdf, err := s.generator.Render(ctx, []byte(req.XML), req.CompanyID, req.CompanyName, logo)
		if err != nil {
			failure := model.AsRenderFailure(err)
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Code: failure.Code, Message: failure.Message})
			return
		}

		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}

// loadLogo reads the company logo from the media directory. A missing
// or unreadable logo is not an error; the document prints without it.
func (s *Server) loadLogo(name string) []byte {
	if s.config.MediaDir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.config.MediaDir, name))
	if err != nil {
		log.Printf("server: no logo %s: %v", name, err)
		return nil
	}
	return data
}
