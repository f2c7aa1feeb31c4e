package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/leirbagxis/FrameTrain/internal/frame"
)

var background = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

// CanvasSize returns the pixel size used for an aspect ratio.
func CanvasSize(aspectRatio string) (int, int) {
	if aspectRatio == frame.AspectRatioWide {
		return 1146, 600
	}
	return 600, 600
}

// SlideImage fills a canvas of the slide's aspect ratio with base, cropping to fit.
// A nil base gives a blank canvas.
func SlideImage(base image.Image, aspectRatio string) image.Image {
	w, h := CanvasSize(aspectRatio)
	canvas := imaging.New(w, h, background)
	if base == nil {
		return canvas
	}
	fitted := imaging.Fill(base, w, h, imaging.Center, imaging.Lanczos)
	return imaging.Paste(canvas, fitted, image.Pt(0, 0))
}

func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
