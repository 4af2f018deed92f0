package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListProducts(c *ginext.Context)
	GetCart(c *ginext.Context)
	ToggleProduct(c *ginext.Context)
	SetQuantity(c *ginext.Context)
	SetCustomAmount(c *ginext.Context)
	ApplyCoupon(c *ginext.Context)
	SubmitCheckout(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		cities := api.Group("/cities/:id")
		{
			// Catalog
			cities.GET("/products", h.ListProducts)

			// Cart
			cities.GET("/cart", h.GetCart)
			cities.POST("/cart/toggle", h.ToggleProduct)
			cities.POST("/cart/quantity", h.SetQuantity)
			cities.POST("/cart/amount", h.SetCustomAmount)

			// Coupons and checkout
			cities.POST("/coupon", h.ApplyCoupon)
			cities.POST("/checkout", h.SubmitCheckout)
		}

		// Payment provider callback
		api.POST("/payments/:id/confirm", h.ConfirmPayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
