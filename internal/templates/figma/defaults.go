package figma

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type defaults struct {
	InitialButtons []ButtonConfig `yaml:"initialButtons"`
	DefaultSlides  []SlideConfig  `yaml:"defaultSlides"`
}

var templateDefaults = mustLoadDefaults(defaultsYAML)

func mustLoadDefaults(data []byte) defaults {
	d, err := parseDefaults(data)
	if err != nil {
		panic(err)
	}
	return d
}

func parseDefaults(data []byte) (defaults, error) {
	var d defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse figma defaults: %w", err)
	}
	if len(d.DefaultSlides) == 0 {
		return d, fmt.Errorf("figma defaults must declare at least one slide")
	}
	for i, s := range d.DefaultSlides {
		if s.ID == "" {
			return d, fmt.Errorf("default slide %d has no id", i)
		}
		if d.DefaultSlides[i].TextLayers == nil {
			d.DefaultSlides[i].TextLayers = TextLayerConfigs{}
		}
	}
	return d, nil
}

// DefaultSlides returns a fresh copy of the slides a new deck starts with.
func DefaultSlides() []SlideConfig {
	slides := make([]SlideConfig, len(templateDefaults.DefaultSlides))
	for i, s := range templateDefaults.DefaultSlides {
		slides[i] = s.clone()
	}
	return slides
}

// InitialButtons returns the buttons a freshly added slide gets.
func InitialButtons() []ButtonConfig {
	return append([]ButtonConfig(nil), templateDefaults.InitialButtons...)
}

func (s SlideConfig) clone() SlideConfig {
	out := s
	out.Buttons = append([]ButtonConfig(nil), s.Buttons...)
	out.TextLayers = make(TextLayerConfigs, len(s.TextLayers))
	for k, v := range s.TextLayers {
		out.TextLayers[k] = v
	}
	return out
}
