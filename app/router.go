// Package app wires up all endpoints available
package app

import (
	"bitwise74/storage-api/app/item"
	"bitwise74/storage-api/app/root"
	"bitwise74/storage-api/app/storage"
	"bitwise74/storage-api/app/user"
	"bitwise74/storage-api/db"
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/service"
	"bitwise74/storage-api/pkg/middleware"
	"bitwise74/storage-api/pkg/security"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{}

	makeLogger()

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	d.Argon = security.NewArgon()

	key, err := hex.DecodeString(viper.GetString("crypto.secret"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption secret, %w", err)
	}

	cipher, err := security.NewIDCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ID cipher, %w", err)
	}
	d.Cipher = cipher

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "User-Id", "Verification-Key"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimit := viper.GetInt("security.rate_limit")

	jwt := middleware.NewJWTMiddleware(database)
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})

	m := router.Group("/api", rateLimiter, middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Validates a JWT token
		m.GET("/validate", jwt, root.Validate)
	}

	u := m.Group("/users")
	{
		// GET /api/users		-> Returns the basic info of a user
		u.GET("", jwt, func(c *gin.Context) { user.UserFetch(c, d) })

		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/users/login 	-> Logs in a user and returns a JWT token
		u.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })

		// POST /api/users/verify	-> Verifies a new user
		u.POST("/verify", func(c *gin.Context) { user.UserVerify(c, d) })
	}

	s := m.Group("/storages", jwt)
	{
		// POST /api/storages		-> Creates a new storage
		s.POST("", func(c *gin.Context) { storage.StorageCreate(c, d) })

		// GET /api/storages		-> Returns a user's storages in bulk
		s.GET("", func(c *gin.Context) { storage.StorageFetchBulk(c, d) })

		// GET /api/storages/:id	-> Returns a storage by its ID if the user owns it
		s.GET("/:id", func(c *gin.Context) { storage.StorageFetch(c, d) })

		// PUT /api/storages/:id	-> Updates a storage
		s.PUT("/:id", func(c *gin.Context) { storage.StorageEdit(c, d) })

		// DELETE /api/storages/:id	-> Deletes a storage and its items
		s.DELETE("/:id", func(c *gin.Context) { storage.StorageDelete(c, d) })

		// POST /api/storages/:id/items	-> Adds an item to a storage
		s.POST("/:id/items", func(c *gin.Context) { item.ItemCreate(c, d) })

		// GET /api/storages/:id/items	-> Returns the items of a storage
		s.GET("/:id/items", func(c *gin.Context) { item.ItemFetchBulk(c, d) })
	}

	i := m.Group("/items", jwt)
	{
		// GET /api/items/:id		-> Returns an item by its ID if the user owns it
		i.GET("/:id", func(c *gin.Context) { item.ItemFetch(c, d) })
	}

	// Consumed tokens expire rarely so checking once a day is plenty
	service.TokenCleanup(time.Hour*24, database)

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
