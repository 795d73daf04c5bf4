package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chefos/backend/config"
	"chefos/backend/internal/api/handler"
	"chefos/backend/internal/api/middleware"
	"chefos/backend/pkg/jwt"
	"chefos/backend/pkg/redis"
)

// Setup builds the Gin engine with all routes wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth endpoints (no token required, rate limited)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/join", h.Auth.Join)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)
			authorized.POST("/auth/invite", middleware.RoleAuth("owner", "chef"), h.Auth.GenerateInvite)

			// team
			team := authorized.Group("/team")
			{
				team.GET("", h.Team.ListMembers)
				team.GET("/me", h.Team.GetCurrentMember)
				team.PUT("/me", h.Team.UpdateProfile)
				team.GET("/:id", h.Team.GetMember)
				team.PUT("/:id/role", middleware.RoleAuth("owner"), h.Team.ChangeRole)
				team.DELETE("/:id", middleware.RoleAuth("owner"), h.Team.RemoveMember)
			}

			// ingredient catalog
			ingredients := authorized.Group("/ingredients")
			{
				ingredients.GET("", h.Ingredient.ListIngredients)
				ingredients.GET("/:id", h.Ingredient.GetIngredient)
				ingredients.POST("/match", h.Ingredient.MatchIngredients)
				ingredients.POST("", middleware.RoleAuth("owner", "chef"), h.Ingredient.CreateIngredient)
				ingredients.PUT("/:id", middleware.RoleAuth("owner", "chef"), h.Ingredient.UpdateIngredient)
				ingredients.DELETE("/:id", middleware.RoleAuth("owner", "chef"), h.Ingredient.DeleteIngredient)
			}

			// recipes and costing
			recipes := authorized.Group("/recipes")
			{
				recipes.GET("", h.Recipe.ListRecipes)
				recipes.GET("/:id", h.Recipe.GetRecipe)
				recipes.GET("/:id/cost", h.Recipe.CostRecipe)
				recipes.POST("", middleware.RoleAuth("owner", "chef"), h.Recipe.CreateRecipe)
				recipes.PUT("/:id", middleware.RoleAuth("owner", "chef"), h.Recipe.UpdateRecipe)
				recipes.DELETE("/:id", middleware.RoleAuth("owner", "chef"), h.Recipe.DeleteRecipe)
			}

			// inventory
			inventory := authorized.Group("/inventory")
			{
				inventory.GET("", h.Inventory.ListItems)
				inventory.GET("/:id", h.Inventory.GetItem)
				inventory.GET("/:id/adjustments", h.Inventory.ListAdjustments)
				inventory.POST("/:id/adjust", h.Inventory.Adjust)
				inventory.PUT("", middleware.RoleAuth("owner", "chef"), h.Inventory.UpsertItem)
			}

			// daily prep lists
			prepTasks := authorized.Group("/prep-tasks")
			{
				prepTasks.GET("", h.PrepList.ListTasks)
				prepTasks.POST("", h.PrepList.CreateTask)
				prepTasks.PUT("/:id", h.PrepList.UpdateTask)
				prepTasks.PUT("/:id/complete", h.PrepList.CompleteTask)
				prepTasks.DELETE("/:id", h.PrepList.DeleteTask)
				prepTasks.POST("/carry-over", middleware.RoleAuth("owner", "chef"), h.PrepList.CarryOverTasks)
			}

			// food safety: temperature logs and duty
			foodSafety := authorized.Group("/food-safety")
			{
				foodSafety.POST("/temperatures", h.FoodSafety.RecordTemperature)
				foodSafety.GET("/temperatures", h.FoodSafety.ListTemperatureLogs)
				foodSafety.GET("/duty", h.FoodSafety.ResolveDuty)
				foodSafety.GET("/duty/defaults", h.FoodSafety.DefaultDuties)
				foodSafety.PUT("/duty", middleware.RoleAuth("owner", "chef"), h.FoodSafety.AssignDuty)
				foodSafety.DELETE("/duty", middleware.RoleAuth("owner", "chef"), h.FoodSafety.ClearDuty)
			}

			// vendors
			vendors := authorized.Group("/vendors")
			{
				vendors.GET("", h.Vendor.ListVendors)
				vendors.GET("/:id", h.Vendor.GetVendor)
				vendors.POST("", middleware.RoleAuth("owner", "chef"), h.Vendor.CreateVendor)
				vendors.PUT("/:id", middleware.RoleAuth("owner", "chef"), h.Vendor.UpdateVendor)
				vendors.DELETE("/:id", middleware.RoleAuth("owner", "chef"), h.Vendor.DeleteVendor)
			}

			// supplier invoices
			invoices := authorized.Group("/invoices")
			invoices.Use(middleware.RoleAuth("owner", "chef"))
			{
				invoices.GET("", h.Invoice.ListInvoices)
				invoices.GET("/:id", h.Invoice.GetInvoice)
				invoices.POST("", h.Invoice.CreateInvoice)
				invoices.POST("/:id/match", h.Invoice.MatchInvoiceLines)
				invoices.POST("/:id/lines/:lineId/confirm", h.Invoice.ConfirmLineMatch)
			}

			// menu and menu engineering
			menu := authorized.Group("/menu")
			{
				menu.GET("", h.Menu.ListMenuItems)
				menu.GET("/engineering", middleware.RoleAuth("owner", "chef"), h.Menu.EngineeringReport)
				menu.POST("", middleware.RoleAuth("owner", "chef"), h.Menu.CreateMenuItem)
				menu.PUT("/:id", middleware.RoleAuth("owner", "chef"), h.Menu.UpdateMenuItem)
				menu.DELETE("/:id", middleware.RoleAuth("owner", "chef"), h.Menu.DeleteMenuItem)
			}

			// exports
			export := authorized.Group("/export")
			{
				export.GET("/duty-roster", middleware.RoleAuth("owner", "chef"), h.Export.ExportDutyRoster)
				export.GET("/duty-calendar", h.Export.ExportDutyCalendar)
			}
		}
	}

	return r
}
