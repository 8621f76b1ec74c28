package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts every endpoint twice, bare and under /api, because the
// frontend mixes both forms. The handlers are path-independent.
func NewRouter(transactions *TransactionHandler, auth *AuthHandler, authMiddleware gin.HandlerFunc) *gin.Engine {
	router := gin.Default()

	for _, group := range []*gin.RouterGroup{&router.RouterGroup, router.Group("/api")} {
		registerRoutes(group, transactions, auth, authMiddleware)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Endpoint not found."})
	})

	return router
}

func registerRoutes(g *gin.RouterGroup, transactions *TransactionHandler, auth *AuthHandler, authMiddleware gin.HandlerFunc) {
	g.POST("/signup", auth.Signup)
	g.POST("/login", auth.Login)
	g.POST("/forgot-password", auth.ForgotPassword)
	g.POST("/sync-users", auth.SyncUsers)
	g.GET("/users", authMiddleware, auth.ListUsers)

	g.POST("/deposit", transactions.Deposit)
	g.POST("/withdraw", transactions.Withdraw)
	g.POST("/transfer", transactions.Transfer)
	g.POST("/undo", transactions.Undo)
	g.POST("/redo", transactions.Redo)
	g.GET("/mini-statement", transactions.MiniStatement)
}
