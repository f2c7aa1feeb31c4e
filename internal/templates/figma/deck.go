package figma

import (
	"errors"
	"fmt"
	"strconv"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

var (
	ErrSlideIndex     = errors.New("slide index out of range")
	ErrLastSlide      = errors.New("a deck must keep at least one slide")
	ErrAtBoundary     = errors.New("slide cannot move past the edge of the deck")
	ErrDirection      = errors.New("direction must be left or right")
	ErrSlideNotFound  = errors.New("slide not found")
	ErrSlideIDChanged = errors.New("slide id cannot be changed")
)

// Capabilities mirrors which deck controls are enabled for the active slide.
type Capabilities struct {
	CanMoveLeft  bool `json:"canMoveLeft"`
	CanMoveRight bool `json:"canMoveRight"`
	CanDelete    bool `json:"canDelete"`
}

// Deck operations never touch the receiver's slice; they return a new config.

func (c *FramePressConfig) withSlides(slides []SlideConfig) *FramePressConfig {
	out := *c
	out.Slides = slides
	return &out
}

func (c *FramePressConfig) copySlides() []SlideConfig {
	return append([]SlideConfig(nil), c.Slides...)
}

func (c *FramePressConfig) checkIndex(index int) error {
	if index < 0 || index >= len(c.Slides) {
		return fmt.Errorf("%w: %d of %d", ErrSlideIndex, index, len(c.Slides))
	}
	return nil
}

// Initialized reports whether the deck already has slides.
func (c *FramePressConfig) Initialized() bool {
	return len(c.Slides) > 0
}

// Initialize seeds an empty deck with the default slides.
func (c *FramePressConfig) Initialize() *FramePressConfig {
	slides := DefaultSlides()
	out := c.withSlides(slides)
	out.NextSlideID = len(slides)
	return out
}

func (c *FramePressConfig) Capabilities(index int) Capabilities {
	return Capabilities{
		CanMoveLeft:  index != 0,
		CanMoveRight: index != len(c.Slides)-1,
		CanDelete:    len(c.Slides) != 1,
	}
}

// ButtonTargets lists the slides a navigate button can point at.
func (c *FramePressConfig) ButtonTargets() []ButtonTarget {
	targets := make([]ButtonTarget, 0, len(c.Slides))
	for _, s := range c.Slides {
		targets = append(targets, ButtonTarget{ID: s.ID, Title: s.Title})
	}
	return targets
}

func (c *FramePressConfig) SlideIndex(id string) int {
	for i, s := range c.Slides {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// AddSlide appends a blank slide with a freshly minted id and returns its index.
func (c *FramePressConfig) AddSlide() (*FramePressConfig, int) {
	buttons := InitialButtons()
	if buttons == nil {
		buttons = []ButtonConfig{}
	}

	newSlide := SlideConfig{
		ID:          strconv.Itoa(c.NextSlideID),
		Title:       "",
		Description: "",
		AspectRatio: "1:1",
		TextLayers:  TextLayerConfigs{},
		Buttons:     buttons,
	}

	out := c.withSlides(append(c.copySlides(), newSlide))
	out.NextSlideID = c.NextSlideID + 1
	return out, len(out.Slides) - 1
}

// RemoveSlide deletes the slide at index and returns the index to select next.
func (c *FramePressConfig) RemoveSlide(index int) (*FramePressConfig, int, error) {
	if err := c.checkIndex(index); err != nil {
		return c, index, err
	}
	if !c.Capabilities(index).CanDelete {
		return c, index, ErrLastSlide
	}

	slides := c.copySlides()
	slides = append(slides[:index], slides[index+1:]...)

	next := index - 1
	if next < 0 {
		next = 0
	}
	return c.withSlides(slides), next, nil
}

// SwapSlide exchanges the slide at index with its neighbour and returns the moved slide's new index.
func (c *FramePressConfig) SwapSlide(index int, direction Direction) (*FramePressConfig, int, error) {
	if err := c.checkIndex(index); err != nil {
		return c, index, err
	}

	caps := c.Capabilities(index)
	var swapIndex int
	switch direction {
	case DirectionLeft:
		if !caps.CanMoveLeft {
			return c, index, ErrAtBoundary
		}
		swapIndex = index - 1
	case DirectionRight:
		if !caps.CanMoveRight {
			return c, index, ErrAtBoundary
		}
		swapIndex = index + 1
	default:
		return c, index, fmt.Errorf("%w: %q", ErrDirection, direction)
	}

	slides := c.copySlides()
	slides[index], slides[swapIndex] = slides[swapIndex], slides[index]
	return c.withSlides(slides), swapIndex, nil
}

// ReplaceSlide swaps in an edited version of the slide at index. The id is fixed.
func (c *FramePressConfig) ReplaceSlide(index int, updated SlideConfig) (*FramePressConfig, error) {
	if err := c.checkIndex(index); err != nil {
		return c, err
	}
	if updated.ID == "" {
		updated.ID = c.Slides[index].ID
	}
	if updated.ID != c.Slides[index].ID {
		return c, ErrSlideIDChanged
	}
	if updated.TextLayers == nil {
		updated.TextLayers = TextLayerConfigs{}
	}
	if updated.Buttons == nil {
		updated.Buttons = []ButtonConfig{}
	}

	slides := c.copySlides()
	slides[index] = updated
	return c.withSlides(slides), nil
}
