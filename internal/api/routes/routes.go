package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/api/auth"
	"github.com/leirbagxis/FrameTrain/internal/api/controllers"
	"github.com/leirbagxis/FrameTrain/internal/api/handlers"
	"github.com/leirbagxis/FrameTrain/internal/container"
)

func RegisterRoutes(r *gin.Engine, c *container.AppContainer) {
	framesController := controllers.NewFramesController(c)
	inspectorController := controllers.NewInspectorController(c)

	api := r.Group("/api")
	{
		api.GET("/ping", handlers.PingHandler(c))
		api.POST("/frames", framesController.CreateFrameController)

		api.POST("/auth/token", handlers.GenerateJWTHandler(c))
		api.GET("/auth/verify", handlers.VerifyJWTHandler())
		api.GET("/me/frames", auth.AuthMiddlewareJWT(), framesController.ListOwnerFramesController)
	}

	// ## EDITOR ## \\
	frames := api.Group("/frames/:frameId", auth.AuthMiddlewareJWT())
	{
		frames.GET("", framesController.GetFrameController)
		frames.DELETE("", framesController.DeleteFrameController)
		frames.PUT("/config", framesController.UpdateConfigController)
		frames.GET("/preview", framesController.GetPreviewController)
		frames.GET("/preview/ws", framesController.PreviewSocketController)

		inspector := frames.Group("/inspector")
		{
			inspector.GET("", inspectorController.GetInspectorController)
			inspector.POST("/slides", inspectorController.AddSlideController)
			inspector.POST("/slides/:index/select", inspectorController.SelectSlideController)
			inspector.PUT("/slides/current", inspectorController.UpdateSlideController)
			inspector.DELETE("/slides/current", inspectorController.RemoveSlideController)
			inspector.POST("/slides/current/move", inspectorController.MoveSlideController)
			inspector.POST("/figma-pat/edit", inspectorController.EditFigmaPATController)
			inspector.DELETE("/figma-pat/edit", inspectorController.CancelFigmaPATController)
			inspector.PUT("/figma-pat", inspectorController.UpdateFigmaPATController)
		}
	}

	// ## FRAMES ## \\
	public := r.Group("/f/:frameId")
	{
		public.GET("", handlers.GetFrameHandler(c))
		public.GET("/qr", handlers.FrameQRHandler(c))
		public.GET("/slides/:slideId/image", handlers.SlideImageHandler(c))
		public.POST("/:handler", handlers.PostFrameHandler(c))
	}
}
