package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booshananamudara/zoura-mobile/internal/filex"
	"github.com/booshananamudara/zoura-mobile/internal/logging"
)

// Server bundles the in-memory store with the HTTP surface the client
// consumes.
type Server struct {
	cfg   *Config
	log   logging.Logger
	store *Store
}

func NewServer(cfg *Config, logger logging.Logger) *Server {
	s := &Server{cfg: cfg, log: logger, store: NewStore()}
	if cfg.Seed {
		s.seed()
	}
	return s
}

// Store exposes the backing store, mainly for tests that need to arrange
// state directly.
func (s *Server) Store() *Store {
	return s.store
}

// Router builds the gin engine with all routes mounted. Public reads stay
// unauthenticated; everything touching per-user state sits behind the JWT
// middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/auth/register", s.handleRegister)
	r.POST("/auth/login", s.handleLogin)
	r.GET("/products", s.handleProducts)
	r.GET("/social/feed", s.handleFeed)

	auth := r.Group("/", s.requireAuth())
	auth.GET("/auth/profile", s.handleProfile)
	auth.GET("/cart", s.handleGetCart)
	auth.POST("/cart", s.handleAddCartItem)
	auth.DELETE("/cart/:itemID", s.handleRemoveCartItem)
	auth.DELETE("/cart", s.handleClearCart)
	auth.POST("/orders", s.handleCreateOrder)
	auth.GET("/orders", s.handleListOrders)
	auth.POST("/social/feed", s.handleCreatePost)

	if dir, err := filex.EnsureSubDir(s.cfg.UploadDir); err == nil {
		r.Static("/uploads", dir)
	} else {
		s.log.Warn(context.Background(), "uploads disabled", "error", err)
	}

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr(), Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "devserver listening", "addr", s.cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// fail writes the error envelope the client parses: {"message": "..."}.
func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
