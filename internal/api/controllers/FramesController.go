package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/api/service"
	"github.com/leirbagxis/FrameTrain/internal/api/types"
	"github.com/leirbagxis/FrameTrain/internal/container"
)

type FramesController struct {
	container *container.AppContainer
}

func NewFramesController(container *container.AppContainer) *FramesController {
	return &FramesController{
		container: container,
	}
}

func respondError(ctx *gin.Context, err error) {
	status := service.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Erro em %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
	}
	ctx.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func (c *FramesController) CreateFrameController(ctx *gin.Context) {
	var body types.CreateFrameRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dados inválidos: " + err.Error(),
		})
		return
	}

	appService := (*service.AppContainerLocal)(c.container)
	result, err := appService.CreateFrameService(ctx, body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

func (c *FramesController) GetFrameController(ctx *gin.Context) {
	appService := (*service.AppContainerLocal)(c.container)
	data, err := appService.GetFrameService(ctx, ctx.GetString("frameID"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// ListOwnerFramesController lists every frame of the token's owner.
func (c *FramesController) ListOwnerFramesController(ctx *gin.Context) {
	appService := (*service.AppContainerLocal)(c.container)
	data, err := appService.ListOwnerFramesService(ctx, ctx.GetString("ownerID"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (c *FramesController) UpdateConfigController(ctx *gin.Context) {
	raw, err := ctx.GetRawData()
	if err != nil || len(raw) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Config obrigatória",
		})
		return
	}

	appService := (*service.AppContainerLocal)(c.container)
	data, err := appService.UpdateFrameConfigService(ctx, ctx.GetString("frameID"), raw)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Config atualizada com sucesso",
		"data":    data,
	})
}

func (c *FramesController) DeleteFrameController(ctx *gin.Context) {
	appService := (*service.AppContainerLocal)(c.container)
	if err := appService.DeleteFrameService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Frame removido com sucesso",
	})
}

func (c *FramesController) GetPreviewController(ctx *gin.Context) {
	appService := (*service.AppContainerLocal)(c.container)
	payload, err := appService.GetPreviewService(ctx, ctx.GetString("frameID"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    payload,
	})
}

// PreviewSocketController upgrades to a websocket that pushes every preview
// payload published for the frame.
func (c *FramesController) PreviewSocketController(ctx *gin.Context) {
	frameID := ctx.GetString("frameID")

	appService := (*service.AppContainerLocal)(c.container)
	current, err := appService.GetPreviewService(ctx, frameID)
	if err != nil {
		log.Printf("Erro ao buscar preview atual de %s: %v", frameID, err)
	}

	if err := c.container.PreviewHub.ServeWS(ctx.Writer, ctx.Request, frameID, current); err != nil {
		log.Printf("Erro no websocket de preview %s: %v", frameID, err)
	}
}
