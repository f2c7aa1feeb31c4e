package quizlet

import "github.com/leirbagxis/FrameTrain/internal/frame"

const (
	createYourOwnURL = "https://frametra.in"
	defaultLinkLabel = "Open Link"
)

// success shows the success screen, or sends the viewer back to the initial
// screen when nothing is configured or they pressed the first ("try again") button.
func success(req *frame.Request, cfg *Config) *frame.Response {
	if cfg.Success.Image == "" || req.Body.UntrustedData.ButtonIndex == 1 {
		return initial(req, cfg)
	}

	buttons := []frame.Button{
		{
			Label:  "Create Your Own",
			Action: frame.ActionLink,
			Target: createYourOwnURL,
		},
	}

	if cfg.Success.URL != "" {
		label := defaultLinkLabel
		if cfg.Success.Label != nil {
			label = *cfg.Success.Label
		}
		buttons = append(buttons, frame.Button{
			Label:  label,
			Action: frame.ActionLink,
			Target: cfg.Success.URL,
		})
	}

	return &frame.Response{
		Buttons:     buttons,
		Image:       cfg.Success.Image,
		AspectRatio: frameAspectRatio(cfg.Success.Image, cfg.Success.AspectRatio),
	}
}
