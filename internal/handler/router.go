package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AndrivA89/pinboard/internal/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	VerifyConnectivity(ctx context.Context) error
}

type Handlers struct {
	Pins   *PinHandler
	Boards *BoardHandler
	Users  *UserHandler
	Store  Pinger
}

// NewRouter builds the engine with the standard middleware chain and every
// route registered.
func NewRouter(log logrus.FieldLogger, timeout time.Duration, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(log), cors.Default())
	if timeout > 0 {
		r.Use(Timeout(timeout))
	}

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/healthz", health(h.Store))

	api := r.Group("/api")
	{
		api.GET("/pins", h.Pins.Feed)
		api.POST("/pins", h.Pins.Create)
		api.GET("/pin/:id", h.Pins.Detail)
		api.POST("/pins/:id/like", h.Pins.Like)
		api.POST("/pins/:id/comment", h.Pins.Comment)

		api.GET("/boards", h.Boards.List)
		api.POST("/boards", h.Boards.Create)
		api.GET("/boards/:boardId", h.Boards.Detail)
		api.POST("/boards/:boardId/add-pin", h.Boards.AddPin)
		api.GET("/:user/boards", h.Boards.ListByUser)

		api.GET("/user/:id", h.Users.Profile)
		api.GET("/user/:id/saved-pins", h.Users.SavedPins)
		api.GET("/user/:id/liked-pins", h.Users.LikedPins)
		api.POST("/users/:id/follow", h.Users.Follow)
		api.GET("/users/:id/following", h.Users.Following)
		api.GET("/users/:id/followers", h.Users.Followers)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}

// Timeout bounds every request context. Storage calls observe the deadline
// and fail with context.DeadlineExceeded.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func health(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store != nil {
			if err := store.VerifyConnectivity(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
