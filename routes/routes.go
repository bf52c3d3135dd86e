package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vnkhanh/e-academy-backend/controllers"
	"github.com/vnkhanh/e-academy-backend/middleware"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
)

func SetupRouter(r *gin.Engine, d *controllers.Deps) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck(d))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(middleware.SessionMiddleware())

	api := r.Group("/api")
	{
		api.GET("/resources", controllers.ListResources(d))
		api.GET("/resources/featured", controllers.FeaturedResources(d))
		api.GET("/resources/:id", controllers.GetResource(d))
		api.GET("/categories", controllers.GetCategories(d))

		api.GET("/session", controllers.GetSession)
		api.GET("/navigate", controllers.Navigate)
	}

	user := api.Group("")
	{
		user.Use(middleware.RequireSignedIn())
		user.POST("/requests", controllers.SubmitRequest(d))
		user.GET("/forum/topics", controllers.ListTopics(d))
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/summary", controllers.AdminSummary(d))
		admin.GET("/resources/export", controllers.ExportResources(d))
	}

	faculty := api.Group("/faculty")
	{
		faculty.Use(middleware.RequireRoles(models.RoleFaculty))
		faculty.GET("/summary", controllers.FacultySummary(d))
	}

	// Các trang frontend, quyết định render/redirect do route guard
	pages := r.Group("")
	{
		pages.Use(middleware.RouteGuard())
		pages.GET(services.PathHome, controllers.HomePage(d))
		pages.GET(services.PathBrowse, controllers.BrowsePage(d))
		pages.GET(services.PathRequest, controllers.Page("request"))
		pages.GET(services.PathForum, controllers.Page("forum"))
		pages.GET(services.PathAdminDashboard, controllers.Page("admin-dashboard"))
		pages.GET(services.PathFacultyDashboard, controllers.Page("faculty-dashboard"))
		pages.GET(services.PathDashboard, controllers.Page("dashboard"))
		pages.GET(services.PathSignIn, controllers.Page("sign-in"))
		pages.GET(services.PathSignIn+"/*any", controllers.Page("sign-in"))
		pages.GET(services.PathSignUp, controllers.Page("sign-up"))
		pages.GET(services.PathSignUp+"/*any", controllers.Page("sign-up"))
	}

	r.NoRoute(middleware.NotFoundPage)

	return r
}
