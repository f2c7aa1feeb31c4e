package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/api/service"
	"github.com/leirbagxis/FrameTrain/internal/api/types"
	"github.com/leirbagxis/FrameTrain/internal/container"
	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
)

type InspectorController struct {
	container *container.AppContainer
}

func NewInspectorController(container *container.AppContainer) *InspectorController {
	return &InspectorController{
		container: container,
	}
}

func (c *InspectorController) appService() *service.AppContainerLocal {
	return (*service.AppContainerLocal)(c.container)
}

func respondView(ctx *gin.Context, view *figma.View, err error) {
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, types.InspectorResponse{Success: true, Data: view})
}

func (c *InspectorController) GetInspectorController(ctx *gin.Context) {
	view, err := c.appService().InspectorViewService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"))
	respondView(ctx, view, err)
}

func (c *InspectorController) AddSlideController(ctx *gin.Context) {
	view, err := c.appService().AddSlideService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"))
	respondView(ctx, view, err)
}

func (c *InspectorController) SelectSlideController(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Índice do slide inválido",
		})
		return
	}

	view, err := c.appService().SelectSlideService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"), index)
	respondView(ctx, view, err)
}

func (c *InspectorController) UpdateSlideController(ctx *gin.Context) {
	var slide figma.SlideConfig
	if err := ctx.ShouldBindJSON(&slide); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dados inválidos: " + err.Error(),
		})
		return
	}

	view, err := c.appService().UpdateSlideService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"), slide)
	respondView(ctx, view, err)
}

func (c *InspectorController) RemoveSlideController(ctx *gin.Context) {
	view, err := c.appService().RemoveSlideService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"))
	respondView(ctx, view, err)
}

func (c *InspectorController) MoveSlideController(ctx *gin.Context) {
	var body types.MoveSlideRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "direction deve ser left ou right",
		})
		return
	}

	view, err := c.appService().MoveSlideService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"), body.Direction)
	respondView(ctx, view, err)
}

func (c *InspectorController) EditFigmaPATController(ctx *gin.Context) {
	view, err := c.appService().EditFigmaPATService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"), true)
	respondView(ctx, view, err)
}

func (c *InspectorController) CancelFigmaPATController(ctx *gin.Context) {
	view, err := c.appService().EditFigmaPATService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"), false)
	respondView(ctx, view, err)
}

func (c *InspectorController) UpdateFigmaPATController(ctx *gin.Context) {
	var body types.UpdateFigmaPATRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "figmaPAT é obrigatório",
		})
		return
	}

	view, err := c.appService().UpdateFigmaPATService(ctx, ctx.GetString("frameID"), ctx.GetString("ownerID"), body.FigmaPAT)
	respondView(ctx, view, err)
}
