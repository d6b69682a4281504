// Package httpapi exposes the REST surface consumed by the marketplace UI:
// auth, ideas, and the file/image upload-and-retrieval pipeline.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/services"
)

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
	jwtSecret  []byte

	users *services.UserService
	ideas *services.IdeaService
	files *services.FileService
}

func NewServer(addr string, logger logging.Logger, secretKey string,
	users *services.UserService, ideas *services.IdeaService, files *services.FileService) *Server {

	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	s := &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger:    logger.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
		users:     users,
		ideas:     ideas,
		files:     files,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")

	api.GET("/health", s.handleHealth)

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.POST("/refresh", s.handleRefresh)
	}

	// listing and display-URL resolution work for anonymous viewers too;
	// the Privacy Gate decides what they see
	ideas := api.Group("/ideas")
	ideas.Use(s.authOptional())
	{
		ideas.GET("", s.handleListIdeas)
		ideas.GET("/:id", s.handleGetIdea)
		ideas.GET("/:id/files", s.handleListFiles)
		ideas.GET("/:id/images", s.handleListImages)
	}

	creator := api.Group("/ideas")
	creator.Use(s.authRequired())
	{
		creator.POST("", s.handleCreateIdea)
		creator.POST("/:id/files/upload-url", s.handleFileUploadURL)
		creator.POST("/:id/files", s.handleRecordFile)
		creator.POST("/:id/images/upload-url", s.handleImageUploadURL)
		creator.POST("/:id/images", s.handleRecordImage)
	}

	objects := api.Group("")
	objects.Use(s.authOptional())
	{
		objects.GET("/files/:id/display-url", s.handleFileDisplayURL)
		objects.GET("/images/:id/display-url", s.handleImageDisplayURL)
	}

	mutate := api.Group("")
	mutate.Use(s.authRequired())
	{
		mutate.PATCH("/files/:id/privacy", s.handleFilePrivacy)
		mutate.PATCH("/images/:id/privacy", s.handleImagePrivacy)
		mutate.DELETE("/images/:id", s.handleDeleteImage)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "starting HTTP server", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
