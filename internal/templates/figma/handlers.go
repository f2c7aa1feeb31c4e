package figma

import (
	"context"
	"fmt"
	"net/url"

	"github.com/leirbagxis/FrameTrain/internal/frame"
)

const (
	TemplateName = "figma"
	maxButtons   = 4
)

func NewTemplate() *frame.Template {
	return &frame.Template{
		Name:          TemplateName,
		DefaultConfig: defaultConfig,
		Handlers: map[string]frame.HandlerFunc{
			"initial": initial,
			"slide":   slide,
		},
	}
}

func defaultConfig() ([]byte, error) {
	return jsonConfig((&FramePressConfig{}).Initialize())
}

func initial(ctx context.Context, req *frame.Request) (*frame.Response, error) {
	cfg, err := decodeInitialized(req.Config)
	if err != nil {
		return nil, err
	}
	return slideResponse(req, &cfg.Slides[0]), nil
}

// slide renders the slide named by the slideId param, or the slide a pressed
// navigate button on it points to.
func slide(ctx context.Context, req *frame.Request) (*frame.Response, error) {
	cfg, err := decodeInitialized(req.Config)
	if err != nil {
		return nil, err
	}

	slideID := req.Params.Get("slideId")
	index := cfg.SlideIndex(slideID)
	if index < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSlideNotFound, slideID)
	}

	pressed := req.Body.UntrustedData.ButtonIndex
	current := &cfg.Slides[index]
	if pressed < 1 || pressed > len(current.Buttons) {
		return slideResponse(req, current), nil
	}

	button := current.Buttons[pressed-1]
	if button.Action != ButtonNavigate {
		return slideResponse(req, current), nil
	}

	next := (index + 1) % len(cfg.Slides)
	if button.Target != "" {
		if target := cfg.SlideIndex(button.Target); target >= 0 {
			next = target
		}
	}
	return slideResponse(req, &cfg.Slides[next]), nil
}

func slideResponse(req *frame.Request, s *SlideConfig) *frame.Response {
	var buttons []frame.Button
	for _, b := range s.Buttons {
		if len(buttons) == maxButtons {
			break
		}
		switch b.Action {
		case ButtonLink:
			buttons = append(buttons, frame.Button{Label: b.Label, Action: frame.ActionLink, Target: b.Target})
		default:
			buttons = append(buttons, frame.Button{Label: b.Label, Action: frame.ActionPost})
		}
	}

	return &frame.Response{
		Buttons:     buttons,
		Image:       SlideImageURL(req.BaseURL, req.FrameID, s.ID),
		AspectRatio: s.FrameAspectRatio(),
		PostURL:     req.HandlerURL("slide", url.Values{"slideId": {s.ID}}),
	}
}

func SlideImageURL(baseURL, frameID, slideID string) string {
	return baseURL + "/f/" + frameID + "/slides/" + url.PathEscape(slideID) + "/image"
}

func decodeInitialized(raw []byte) (*FramePressConfig, error) {
	cfg, err := DecodeConfig(raw)
	if err != nil {
		return nil, err
	}
	if !cfg.Initialized() {
		cfg = cfg.Initialize()
	}
	return cfg, nil
}
