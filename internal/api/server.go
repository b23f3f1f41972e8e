package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/config"
	"github.com/yungtweek/mockai/internal/logger"
	"github.com/yungtweek/mockai/internal/resource"
)

// Server wraps the HTTP server and its routes.
//
// It is intentionally small/simple because this project is a mock/test tool,
// not a production service framework.
type Server struct {
	cfg      config.Config
	registry *resource.Registry
	contents []string

	httpServer *http.Server
}

// New builds a server around an isolated resource registry and the preloaded
// canned contents for the "random" completion mode.
func New(cfg config.Config, registry *resource.Registry, contents []string) *Server {
	return &Server{
		cfg:      cfg,
		registry: registry,
		contents: contents,
	}
}

// Router assembles the gin engine with the full middleware chain and every
// mounted route.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", delayHeader},
	}))
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(Metrics())
	router.Use(BodyLimit(int64(s.cfg.RequestSizeLimit)))
	router.Use(DelayGate(s.cfg.ResponseDelayMs))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World! This is MockAI")
	})
	router.GET("/metrics", MetricsHandler())

	v1 := router.Group("/v1")
	{
		v1.POST("/chat/completions", s.chatCompletions)
		v1.POST("/completions", s.textCompletions)
		v1.POST("/embeddings", s.createEmbeddings)
		v1.GET("/models", s.listModels)
		v1.GET("/models/:model", s.getModel)
		v1.POST("/moderations", s.createModeration)
		v1.POST("/images/generations", s.generateImages)

		v1.POST("/audio/speech", s.audioSpeech)
		v1.POST("/audio/transcriptions", s.audioTranscriptions)
		v1.POST("/audio/translations", s.audioTranslations)

		v1.POST("/uploads", s.createUpload)
		v1.POST("/uploads/:upload_id/parts", s.addUploadPart)
		v1.POST("/uploads/:upload_id/complete", s.completeUpload)
		v1.POST("/uploads/:upload_id/cancel", s.cancelUpload)

		v1.POST("/batch", s.createBatch)
		v1.GET("/batch/:batch_id", s.getBatch)
		v1.POST("/batch/:batch_id/cancel", s.cancelBatch)
		v1.GET("/batch/:batch_id/events", s.listBatchEvents)

		v1.POST("/fine_tuning/jobs", s.createJob)
		v1.GET("/fine_tuning/jobs", s.listJobs)
		v1.GET("/fine_tuning/jobs/:job_id", s.getJob)
		v1.POST("/fine_tuning/jobs/:job_id/cancel", s.cancelJob)
		v1.GET("/fine_tuning/jobs/:job_id/events", s.listJobEvents)

		v1.GET("/files", s.listFiles)
		v1.POST("/files", s.uploadFile)
		v1.GET("/files/:file_id", s.getFile)
		v1.DELETE("/files/:file_id", s.deleteFile)
		v1.GET("/files/:file_id/content", s.getFileContent)
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found")
	})

	return router
}

// Run starts listening on addr and blocks until the server stops.
func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	logger.Log.Infow("[api] starting server", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorw("[api] server stopped with error", "err", err)
		return err
	}

	logger.Log.Info("[api] server stopped gracefully")
	return nil
}

// GracefulStop drains in-flight requests, waiting up to 10s.
func (s *Server) GracefulStop() {
	if s.httpServer == nil {
		return
	}
	logger.Log.Infow("[api] graceful stop", "addr", s.httpServer.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = s.httpServer.Shutdown(ctx)
}

// listEnvelope is the shared list response shape.
func listEnvelope(data any, hasMore bool) gin.H {
	return gin.H{
		"object":   "list",
		"data":     data,
		"has_more": hasMore,
	}
}

// pageParams parses the cursor pagination query with the API's default page
// size of 20.
func pageParams(c *gin.Context) (after string, limit int) {
	after = c.Query("after")
	limit = 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return after, limit
}
