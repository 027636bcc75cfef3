package handler

import (
	"net/http"

	"crypto-wallet-client/internal/adapter/http/middleware"
	"crypto-wallet-client/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Session ports.SessionController
	Wallet  ports.WalletController
	Live    ports.LiveUpdater
	Backend ports.BackendClient
	Logger  zerolog.Logger
	Mode    string // debug, release, test
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))

	// Conditional landing redirect, the one piece of navigation the client
	// owns.
	r.GET("/", func(c *gin.Context) {
		if deps.Session.Identity() != nil {
			c.Redirect(http.StatusFound, "/api/wallet")
			return
		}
		c.Redirect(http.StatusFound, "/api/session")
	})

	sessionHandler := NewSessionHandler(deps.Session, deps.Wallet, deps.Live, deps.Logger)
	walletHandler := NewWalletHandler(deps.Wallet)
	adminHandler := NewAdminHandler(deps.Backend)

	api := r.Group("/api")
	{
		api.GET("/session", sessionHandler.Current)
		api.POST("/session", sessionHandler.Login)
		api.DELETE("/session", sessionHandler.Logout)
		api.POST("/register", sessionHandler.Register)
	}

	requireSession := middleware.RequireSession(deps.Session)
	wallet := api.Group("/wallet", requireSession)
	{
		wallet.GET("", walletHandler.Get)
		wallet.POST("/refresh", walletHandler.Refresh)
		wallet.POST("/setup", walletHandler.Setup)
		wallet.POST("/transfer", walletHandler.Transfer)
		wallet.DELETE("/account", walletHandler.Close)
	}

	admin := api.Group("/admin", requireSession, middleware.RequireAdmin(deps.Session))
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/accounts", adminHandler.ListAccounts)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
	}

	return r
}
