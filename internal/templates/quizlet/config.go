package quizlet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leirbagxis/FrameTrain/internal/frame"
)

const TemplateName = "quizlet"

type ScreenConfig struct {
	Image       string  `json:"image,omitempty"`
	AspectRatio *string `json:"aspectRatio,omitempty"`
}

type SuccessConfig struct {
	Image       string  `json:"image,omitempty"`
	URL         string  `json:"url,omitempty"`
	Label       *string `json:"label,omitempty"`
	AspectRatio *string `json:"aspectRatio,omitempty"`
}

type Config struct {
	Cover          ScreenConfig  `json:"cover"`
	InitialButtons []string      `json:"initialButtons,omitempty"`
	Success        SuccessConfig `json:"success"`
}

var defaultInitialButtons = []string{"Try again", "Submit"}

func DecodeConfig(raw []byte) (*Config, error) {
	var cfg Config
	if len(raw) == 0 {
		return &cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("invalid quizlet config: %w", err)
	}
	return &cfg, nil
}

// frameAspectRatio maps a configured ratio to the client value. Both an image and a
// ratio must be present, otherwise the ratio stays unset.
func frameAspectRatio(image string, aspectRatio *string) string {
	if image == "" || aspectRatio == nil {
		return ""
	}
	if *aspectRatio == "1.91/1" {
		return frame.AspectRatioWide
	}
	return frame.AspectRatioSquare
}

func NewTemplate() *frame.Template {
	return &frame.Template{
		Name: TemplateName,
		DefaultConfig: func() ([]byte, error) {
			return json.Marshal(Config{InitialButtons: defaultInitialButtons})
		},
		Handlers: map[string]frame.HandlerFunc{
			"initial": initialHandler,
			"success": successHandler,
		},
	}
}

func initialHandler(ctx context.Context, req *frame.Request) (*frame.Response, error) {
	cfg, err := DecodeConfig(req.Config)
	if err != nil {
		return nil, err
	}
	return initial(req, cfg), nil
}

func successHandler(ctx context.Context, req *frame.Request) (*frame.Response, error) {
	cfg, err := DecodeConfig(req.Config)
	if err != nil {
		return nil, err
	}
	return success(req, cfg), nil
}
