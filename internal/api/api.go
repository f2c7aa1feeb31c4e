package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/api/routes"
	"github.com/leirbagxis/FrameTrain/internal/container"
	"github.com/leirbagxis/FrameTrain/pkg/config"
)

func NewRouter(app *container.AppContainer) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, app)
	return router
}

// StartApi serves until ctx is cancelled, then shuts the server down.
func StartApi(ctx context.Context, app *container.AppContainer) error {
	srv := &http.Server{
		Addr:    config.ApiAddr,
		Handler: NewRouter(app),
	}

	go func() {
		log.Printf("🌐 API REST rodando em %s", config.ApiAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Erro ao iniciar servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🔻 Encerrando API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
