package routes

import (
	"sandwich-service/controllers"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every entity controller the router serves.
type Controllers struct {
	Customers    *controllers.CustomerController
	Orders       *controllers.OrderController
	OrderDetails *controllers.OrderDetailController
	Sandwiches   *controllers.SandwichController
	Resources    *controllers.ResourceController
	Recipes      *controllers.RecipeController
	Reviews      *controllers.ReviewController
	Payments     *controllers.PaymentController
	Promotions   *controllers.PromotionController
}

// crudHandlers is the five-route surface every entity shares.
type crudHandlers struct {
	create, list, get, update, remove gin.HandlerFunc
}

// registerCRUD mounts handlers under path. The collection routes answer both
// with and without the trailing slash.
func registerCRUD(r gin.IRouter, path string, h crudHandlers) *gin.RouterGroup {
	group := r.Group(path)
	for _, root := range []string{"", "/"} {
		group.POST(root, h.create)
		group.GET(root, h.list)
	}
	group.GET("/:id", h.get)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
	return group
}

// RegisterRoutes sets up every entity route group.
func RegisterRoutes(r gin.IRouter, c Controllers) {
	registerCRUD(r, "/customers", crudHandlers{
		c.Customers.CreateCustomer, c.Customers.ListCustomers, c.Customers.GetCustomer,
		c.Customers.UpdateCustomer, c.Customers.DeleteCustomer,
	})

	orders := registerCRUD(r, "/orders", crudHandlers{
		c.Orders.CreateOrder, c.Orders.ListOrders, c.Orders.GetOrder,
		c.Orders.UpdateOrder, c.Orders.DeleteOrder,
	})
	orders.GET("/by-date", c.Orders.ListOrdersByDate)

	registerCRUD(r, "/order_details", crudHandlers{
		c.OrderDetails.CreateOrderDetail, c.OrderDetails.ListOrderDetails, c.OrderDetails.GetOrderDetail,
		c.OrderDetails.UpdateOrderDetail, c.OrderDetails.DeleteOrderDetail,
	})

	registerCRUD(r, "/sandwiches", crudHandlers{
		c.Sandwiches.CreateSandwich, c.Sandwiches.ListSandwiches, c.Sandwiches.GetSandwich,
		c.Sandwiches.UpdateSandwich, c.Sandwiches.DeleteSandwich,
	})

	registerCRUD(r, "/resources", crudHandlers{
		c.Resources.CreateResource, c.Resources.ListResources, c.Resources.GetResource,
		c.Resources.UpdateResource, c.Resources.DeleteResource,
	})

	registerCRUD(r, "/recipes", crudHandlers{
		c.Recipes.CreateRecipe, c.Recipes.ListRecipes, c.Recipes.GetRecipe,
		c.Recipes.UpdateRecipe, c.Recipes.DeleteRecipe,
	})

	registerCRUD(r, "/reviews", crudHandlers{
		c.Reviews.CreateReview, c.Reviews.ListReviews, c.Reviews.GetReview,
		c.Reviews.UpdateReview, c.Reviews.DeleteReview,
	})

	payments := registerCRUD(r, "/payments", crudHandlers{
		c.Payments.CreatePayment, c.Payments.ListPayments, c.Payments.GetPayment,
		c.Payments.UpdatePayment, c.Payments.DeletePayment,
	})
	payments.GET("/total", c.Payments.GetTotalPayments)

	registerCRUD(r, "/promotions", crudHandlers{
		c.Promotions.CreatePromotion, c.Promotions.ListPromotions, c.Promotions.GetPromotion,
		c.Promotions.UpdatePromotion, c.Promotions.DeletePromotion,
	})
}
