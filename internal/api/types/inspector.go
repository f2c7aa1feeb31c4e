package types

import "github.com/leirbagxis/FrameTrain/internal/templates/figma"

type MoveSlideRequest struct {
	Direction figma.Direction `json:"direction" binding:"required,oneof=left right"`
}

type UpdateFigmaPATRequest struct {
	FigmaPAT string `json:"figmaPAT" binding:"required"`
}

type InspectorResponse struct {
	Success bool        `json:"success"`
	Data    *figma.View `json:"data"`
}
