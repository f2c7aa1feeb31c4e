package service

import (
	"errors"
	"net/http"

	"github.com/leirbagxis/FrameTrain/internal/database/repositories"
	"github.com/leirbagxis/FrameTrain/internal/frame"
	"github.com/leirbagxis/FrameTrain/internal/templates/figma"
)

// HTTPStatus maps service errors to the status the API answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrFrameNotFound),
		errors.Is(err, figma.ErrSlideNotFound),
		errors.Is(err, frame.ErrUnknownTemplate),
		errors.Is(err, frame.ErrUnknownHandler):
		return http.StatusNotFound
	case errors.Is(err, figma.ErrLastSlide),
		errors.Is(err, figma.ErrAtBoundary):
		return http.StatusConflict
	case errors.Is(err, figma.ErrSlideIndex),
		errors.Is(err, figma.ErrDirection),
		errors.Is(err, figma.ErrSlideIDChanged),
		errors.Is(err, ErrNotFigma),
		errors.Is(err, ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidSignature):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
