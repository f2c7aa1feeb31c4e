package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leirbagxis/FrameTrain/internal/api/auth"
	"github.com/leirbagxis/FrameTrain/internal/api/service"
	"github.com/leirbagxis/FrameTrain/internal/api/types"
	"github.com/leirbagxis/FrameTrain/internal/container"
)

func VerifyJWTHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"valid": false,
				"error": "Token não fornecido",
			})
			return
		}

		tokenString := authHeader
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		}

		claims, err := auth.ValidateTokenJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"valid": false,
				"error": "Token inválido",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":      true,
			"frame_id":   claims.FrameID,
			"owner_id":   claims.OwnerID,
			"expires_at": claims.ExpiresAt.Time,
		})
	}
}

func GenerateJWTHandler(app *container.AppContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request types.TokenRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "frameId e signature são obrigatórios",
			})
			return
		}

		appService := (*service.AppContainerLocal)(app)
		token, frame, err := appService.IssueTokenService(c, request)
		if err != nil {
			log.Printf("Erro ao gerar token para %s: %v", request.FrameID, err)
			c.JSON(service.HTTPStatus(err), gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Token gerado com sucesso!",
			"token":   token,
			"frameId": frame.ID,
			"ownerId": frame.OwnerID,
		})
	}
}
