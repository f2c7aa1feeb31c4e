package figma

import "github.com/leirbagxis/FrameTrain/internal/frame"

type ButtonAction string

const (
	// ButtonNavigate moves to the slide named by Target, or the next slide when empty.
	ButtonNavigate ButtonAction = "navigate"
	ButtonLink     ButtonAction = "link"
)

type TextLayerConfig struct {
	Content    string `json:"content,omitempty" yaml:"content"`
	FontFamily string `json:"fontFamily,omitempty" yaml:"fontFamily"`
	FontWeight int    `json:"fontWeight,omitempty" yaml:"fontWeight"`
	FontStyle  string `json:"fontStyle,omitempty" yaml:"fontStyle"`
	FontSize   int    `json:"fontSize,omitempty" yaml:"fontSize"`
	Color      string `json:"color,omitempty" yaml:"color"`
}

// TextLayerConfigs maps a Figma text node id to its style.
type TextLayerConfigs map[string]TextLayerConfig

type ButtonConfig struct {
	Label  string       `json:"label" yaml:"label"`
	Action ButtonAction `json:"action" yaml:"action"`
	Target string       `json:"target" yaml:"target"`
}

type SlideConfig struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	AspectRatio string           `json:"aspectRatio" yaml:"aspectRatio"`
	ImageURL    string           `json:"imageUrl,omitempty" yaml:"imageUrl"`
	TextLayers  TextLayerConfigs `json:"textLayers" yaml:"textLayers"`
	Buttons     []ButtonConfig   `json:"buttons" yaml:"buttons"`
}

// FramePressConfig is the whole persisted config of a figma frame. It is always
// written back as one document.
type FramePressConfig struct {
	Slides      []SlideConfig `json:"slides,omitempty"`
	NextSlideID int           `json:"nextSlideId"`
	FigmaPAT    string        `json:"figmaPAT,omitempty"`
}

type ButtonTarget struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// FrameAspectRatio maps a slide's configured ratio to one a client accepts.
func (s *SlideConfig) FrameAspectRatio() string {
	if s.AspectRatio == frame.AspectRatioWide || s.AspectRatio == "1.91/1" {
		return frame.AspectRatioWide
	}
	return frame.AspectRatioSquare
}
