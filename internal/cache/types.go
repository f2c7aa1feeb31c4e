package cache

// InspectorSession is the per-editor UI state of the slide inspector.
type InspectorSession struct {
	CurrentSlideIndex int  `json:"current_slide_index"`
	EditingFigmaPAT   bool `json:"editing_figma_pat"`
}

// PreviewPayload tells the preview pane which handler to render and with what input.
type PreviewPayload struct {
	Handler     string `json:"handler"`
	ButtonIndex int    `json:"buttonIndex"`
	InputText   string `json:"inputText"`
	Params      string `json:"params"`
}
