// Package webserver hosts the Echo HTTP server shared by the public portal
// API and the admin API. Route helpers attach the right guard chain:
// Pub* routes are anonymous, Auth* routes need a login session, Api* routes
// are the admin surface under /api/admin.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/suryatech/solarportal/config"
)

// Context is the application surface the web server depends on.
type Context interface {
	Config() *config.AppConfig
	DB() *gorm.DB
}

const dbContextKey = "app_db"

type WebServer struct {
	ctx  Context
	root *echo.Echo
}

var server *WebServer

// Init builds the singleton web server around the application context.
func Init(ctx Context) {
	server = &WebServer{ctx: ctx, root: echo.New()}
	e := server.root
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(ctx.Config().Web.Secret))))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(dbContextKey, ctx.DB())
			return next(c)
		}
	})
	e.Use(requestLogger)
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)))
		return err
	}
}

// Echo exposes the underlying router, mainly for tests.
func Echo() *echo.Echo {
	return server.root
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(dbContextKey).(*gorm.DB)
}

// Listen starts the HTTP listener and blocks.
func Listen() error {
	cfg := server.ctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.L().Info("starting web server", zap.String("listen", addr))
	err := server.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener gracefully.
func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

// Public routes, no session required

func PubGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}

// Authenticated customer routes

func AuthGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h, RequireAuth)
}

// Admin API routes under /api/admin

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api/admin"+path, h, RequireAuth, RequireAdmin)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api/admin"+path, h, RequireAuth, RequireAdmin)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT("/api/admin"+path, h, RequireAuth, RequireAdmin)
}

func ApiPATCH(path string, h echo.HandlerFunc) {
	server.root.PATCH("/api/admin"+path, h, RequireAuth, RequireAdmin)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE("/api/admin"+path, h, RequireAuth, RequireAdmin)
}
