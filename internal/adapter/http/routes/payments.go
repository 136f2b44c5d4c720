package routes

import (
	"billing_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges   = "/charges"
	PathCustomers = "/customers"
	PathCards     = "/cards"
	PathTokens    = "/tokens"
	PathAccounts  = "/accounts"
	PathTemplates = "/templates"
)

func addPaymentRoutes(rg *gin.RouterGroup, chargeHandler *handlers.ChargeHandler, customerHandler *handlers.CustomerHandler, cardHandler *handlers.CardHandler, tokenHandler *handlers.TokenHandler, accountHandler *handlers.AccountHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("", chargeHandler.CreateCharge)
		charges.GET("", chargeHandler.ListCharges)
		charges.GET("/:charge_id", chargeHandler.GetCharge)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:customer_id", customerHandler.GetCustomer)
		customers.PATCH("/:customer_id", customerHandler.UpdateCustomer)
		customers.DELETE("/:customer_id", customerHandler.DeleteCustomer)

		// Cards live under the customer that owns them.
		cards := customers.Group("/:customer_id" + PathCards)
		{
			cards.POST("", cardHandler.CreateCard)
			cards.GET("", cardHandler.ListCards)
			cards.GET("/:card_id", cardHandler.GetCard)
			cards.DELETE("/:card_id", cardHandler.DeleteCard)
		}
	}

	tokens := rg.Group(PathTokens)
	{
		tokens.POST("", tokenHandler.CreateToken)
		tokens.GET("/:token_id", tokenHandler.GetToken)
	}

	accounts := rg.Group(PathAccounts)
	{
		accounts.POST("", accountHandler.CreateAccount)
	}
}

func addTemplateRoutes(rg *gin.RouterGroup, templateHandler *handlers.TemplateHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.POST("/render", templateHandler.RenderTemplate)
	}
}
