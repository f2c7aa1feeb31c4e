package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/api/service"
	"github.com/leirbagxis/FrameTrain/internal/container"
	"github.com/leirbagxis/FrameTrain/internal/frame"
)

const pageTitle = "FrameTrain"

// GetFrameHandler serves the initial screen of a frame.
func GetFrameHandler(app *container.AppContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		appService := (*service.AppContainerLocal)(app)
		res, err := appService.RenderFrameService(c, c.Param("frameId"), "initial", c.Request.URL.Query(), frame.ActionPayload{})
		if err != nil {
			frameError(c, err)
			return
		}
		writeFrame(c, res)
	}
}

// PostFrameHandler answers a button press routed to one of the template's handlers.
func PostFrameHandler(app *container.AppContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body frame.ActionPayload
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Dados inválidos: " + err.Error(),
			})
			return
		}

		appService := (*service.AppContainerLocal)(app)
		res, err := appService.RenderFrameService(c, c.Param("frameId"), c.Param("handler"), c.Request.URL.Query(), body)
		if err != nil {
			frameError(c, err)
			return
		}
		writeFrame(c, res)
	}
}

func FrameQRHandler(app *container.AppContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		size, _ := strconv.Atoi(c.Query("size"))

		appService := (*service.AppContainerLocal)(app)
		png, err := appService.FrameQRService(c.Param("frameId"), size)
		if err != nil {
			frameError(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

func SlideImageHandler(app *container.AppContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		appService := (*service.AppContainerLocal)(app)
		png, err := appService.SlideImageService(c, c.Param("frameId"), c.Param("slideId"))
		if err != nil {
			frameError(c, err)
			return
		}
		c.Header("Cache-Control", "public, max-age=60")
		c.Data(http.StatusOK, "image/png", png)
	}
}

// writeFrame answers with fc:frame meta tags, or JSON when the client asks for it.
func writeFrame(c *gin.Context, res *frame.Response) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, res)
		return
	}

	page, err := frame.RenderHTML(res, pageTitle, res.PostURL)
	if err != nil {
		frameError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func frameError(c *gin.Context, err error) {
	status := service.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Erro ao renderizar frame %s: %v", c.Param("frameId"), err)
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
