// Package router assembles the gin engine: middleware chain, route table
// and the role required by each route.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookshop/internal/domain/user"
	"bookshop/internal/interface/http/handler"
	"bookshop/internal/interface/http/middleware"
)

func init() {
	// Unknown JSON fields are client errors, not noise to ignore.
	binding.EnableDecoderDisallowUnknownFields = true
}

// Handlers groups everything the route table mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Book     *handler.BookHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
}

// New builds the engine. mode is gin.DebugMode, gin.ReleaseMode or
// gin.TestMode; timeout bounds every request.
func New(mode string, timeout time.Duration, h Handlers, authn *middleware.AuthMiddleware) *gin.Engine {
	gin.SetMode(mode)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.CorrelationID(),
		middleware.RequestLogger(),
		middleware.Timeout(timeout),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", authn.RequireAuth(), h.Auth.Logout)
	}

	authed := r.Group("", authn.RequireAuth())
	admin := authed.Group("", authn.RequireRole(user.RoleAdmin))

	books := authed.Group("/books")
	{
		books.GET("", h.Book.List)
		books.GET("/:id", h.Book.Get)
	}
	adminBooks := admin.Group("/books")
	{
		adminBooks.POST("", h.Book.Create)
		adminBooks.PUT("/:id", h.Book.Update)
		adminBooks.DELETE("/:id", h.Book.Delete)
	}

	categories := authed.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.GET("/:id/books", h.Book.ListByCategory)
	}
	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", h.Category.Create)
		adminCategories.PUT("/:id", h.Category.Update)
		adminCategories.DELETE("/:id", h.Category.Delete)
	}

	carts := authed.Group("/cart")
	{
		carts.GET("", h.Cart.View)
		carts.POST("", h.Cart.AddItem)
		carts.PUT("/cart-items/:id", h.Cart.UpdateItem)
		carts.DELETE("/cart-items/:id", h.Cart.RemoveItem)
	}

	orders := authed.Group("/orders")
	{
		orders.POST("", h.Order.Place)
		orders.GET("", h.Order.List)
	}

	return r
}
