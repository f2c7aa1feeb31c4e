package quizlet

import "github.com/leirbagxis/FrameTrain/internal/frame"

func initial(req *frame.Request, cfg *Config) *frame.Response {
	labels := cfg.InitialButtons
	if len(labels) == 0 {
		labels = defaultInitialButtons
	}

	buttons := make([]frame.Button, 0, len(labels))
	for _, label := range labels {
		buttons = append(buttons, frame.Button{Label: label, Action: frame.ActionPost})
	}

	return &frame.Response{
		Buttons:     buttons,
		Image:       cfg.Cover.Image,
		AspectRatio: frameAspectRatio(cfg.Cover.Image, cfg.Cover.AspectRatio),
		PostURL:     req.HandlerURL("success", nil),
	}
}
