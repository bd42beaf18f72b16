package app

import (
	"coursecraft_backend/docs"
	"coursecraft_backend/internal/config"
	"coursecraft_backend/internal/middleware"
	"coursecraft_backend/internal/model"
	"coursecraft_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerAuthoringRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

// Routes for any authenticated user. Course and outline reads enforce the
// enrollment gate for students inside the service layer.
func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.auth.UpdateProfile)

	rg.GET("/courses", c.course.ListCourses)
	rg.GET("/courses/:id", c.course.GetCourse)
	rg.GET("/courses/:id/outline", c.course.GetOutline)

	rg.GET("/courses/:id/sections", c.section.ListSections)
	rg.GET("/sections/:id/pages", c.page.ListPages)
	rg.GET("/pages/:id/blocks", c.block.ListBlocks)

	rg.POST("/courses/:id/enroll", c.enrollment.Enroll)
	rg.DELETE("/courses/:id/enroll", c.enrollment.Unenroll)

	rg.PUT("/blocks/:id/answer", c.answer.SubmitAnswer)
	rg.GET("/blocks/:id/answer", c.answer.GetOwnAnswer)

	rg.PUT("/blocks/:id/video-post", c.videoPost.SubmitVideoPost)
	rg.GET("/blocks/:id/video-post", c.videoPost.GetOwnVideoPost)
}

// Authoring routes: teachers and admins only.
func (a *App) registerAuthoringRoutes(rg *gin.RouterGroup, c *controllers) {
	authoring := rg.Group("")
	authoring.Use(middleware.RoleMiddleware(model.Teacher))
	{
		authoring.POST("/courses", c.course.CreateCourse)
		authoring.PUT("/courses/:id", c.course.UpdateCourse)
		authoring.DELETE("/courses/:id", c.course.DeleteCourse)

		authoring.POST("/courses/:id/sections", c.section.CreateSection)
		authoring.PUT("/courses/:id/sections/reorder", c.section.ReorderSections)
		authoring.PUT("/sections/:id", c.section.UpdateSection)
		authoring.DELETE("/sections/:id", c.section.DeleteSection)

		authoring.POST("/sections/:id/pages", c.page.CreatePage)
		authoring.PUT("/sections/:id/pages/reorder", c.page.ReorderPages)
		authoring.PUT("/pages/:id", c.page.UpdatePage)
		authoring.DELETE("/pages/:id", c.page.DeletePage)

		authoring.POST("/pages/:id/blocks", c.block.CreateBlock)
		authoring.PUT("/pages/:id/blocks/reorder", c.block.ReorderBlocks)
		authoring.PUT("/blocks/:id", c.block.UpdateBlock)
		authoring.DELETE("/blocks/:id", c.block.DeleteBlock)

		authoring.GET("/courses/:id/enrollments", c.enrollment.ListEnrollments)
		authoring.GET("/blocks/:id/answers", c.answer.ListAnswers)
		authoring.GET("/blocks/:id/video-posts", c.videoPost.ListVideoPosts)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/role", c.user.SetRole)
	}
}
