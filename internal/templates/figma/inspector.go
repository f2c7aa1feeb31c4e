package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/leirbagxis/FrameTrain/internal/cache"
)

type ConfigStore interface {
	GetFrameConfig(ctx context.Context, frameID string) ([]byte, error)
	UpdateFrameConfig(ctx context.Context, frameID string, config []byte) error
}

type SessionStore interface {
	GetInspectorSession(ctx context.Context, frameID, ownerID string) (*cache.InspectorSession, error)
	SaveInspectorSession(ctx context.Context, frameID, ownerID string, session *cache.InspectorSession) error
}

type PreviewPublisher interface {
	PublishPreview(ctx context.Context, frameID string, payload cache.PreviewPayload) error
}

// Inspector is the slide deck editor of one frame, driven by one editor at a time.
type Inspector struct {
	configs  ConfigStore
	sessions SessionStore
	preview  PreviewPublisher
	fonts    *FontLoader
	locks    *frameLocks
}

func NewInspector(configs ConfigStore, sessions SessionStore, preview PreviewPublisher, fonts *FontLoader) *Inspector {
	return &Inspector{
		configs:  configs,
		sessions: sessions,
		preview:  preview,
		fonts:    fonts,
		locks:    newFrameLocks(),
	}
}

type View struct {
	Slides            []SlideConfig  `json:"slides"`
	NextSlideID       int            `json:"nextSlideId"`
	CurrentSlideIndex int            `json:"currentSlideIndex"`
	SelectedSlide     *SlideConfig   `json:"selectedSlide,omitempty"`
	FigmaPAT          string         `json:"figmaPAT,omitempty"`
	EditingFigmaPAT   bool           `json:"editingFigmaPAT"`
	ButtonTargets     []ButtonTarget `json:"buttonTargets"`
	FontStylesheets   []string       `json:"fontStylesheets"`
	Capabilities
}

// state is what every inspector call works on: the deck and the editor's session.
type state struct {
	frameID string
	ownerID string
	config  *FramePressConfig
	session *cache.InspectorSession
}

func (in *Inspector) load(ctx context.Context, frameID, ownerID string) (*state, error) {
	raw, err := in.configs.GetFrameConfig(ctx, frameID)
	if err != nil {
		return nil, err
	}

	cfg, err := DecodeConfig(raw)
	if err != nil {
		return nil, err
	}

	// Setup default slides if this is a new instance
	if !cfg.Initialized() {
		log.Printf("Inspector(%s): initializing slides", frameID)
		cfg = cfg.Initialize()
		if err := in.save(ctx, frameID, cfg); err != nil {
			return nil, err
		}
	}

	session, err := in.sessions.GetInspectorSession(ctx, frameID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inspector session: %w", err)
	}
	if session == nil {
		session = &cache.InspectorSession{
			CurrentSlideIndex: 0,
			EditingFigmaPAT:   cfg.FigmaPAT == "",
		}
	}

	// the config may have been replaced wholesale since the session was saved
	if session.CurrentSlideIndex >= len(cfg.Slides) {
		session.CurrentSlideIndex = len(cfg.Slides) - 1
	}
	if session.CurrentSlideIndex < 0 {
		session.CurrentSlideIndex = 0
	}

	return &state{frameID: frameID, ownerID: ownerID, config: cfg, session: session}, nil
}

func (in *Inspector) save(ctx context.Context, frameID string, cfg *FramePressConfig) error {
	data, err := jsonConfig(cfg)
	if err != nil {
		return err
	}
	if err := in.configs.UpdateFrameConfig(ctx, frameID, data); err != nil {
		return fmt.Errorf("failed to save figma config: %w", err)
	}
	return nil
}

func (in *Inspector) saveSession(ctx context.Context, st *state) error {
	if err := in.sessions.SaveInspectorSession(ctx, st.frameID, st.ownerID, st.session); err != nil {
		return fmt.Errorf("failed to save inspector session: %w", err)
	}
	return nil
}

// selectSlide makes index the active slide and points the preview at it.
func (in *Inspector) selectSlide(ctx context.Context, st *state, index int) error {
	if err := st.config.checkIndex(index); err != nil {
		return err
	}

	st.session.CurrentSlideIndex = index
	if err := in.saveSession(ctx, st); err != nil {
		return err
	}

	payload := SlidePreview(st.config.Slides[index].ID)
	if err := in.preview.PublishPreview(ctx, st.frameID, payload); err != nil {
		// the editor still works without a live preview
		log.Printf("Inspector(%s): failed to publish preview: %v", st.frameID, err)
	}
	return nil
}

func (in *Inspector) view(st *state) *View {
	cfg := st.config
	index := st.session.CurrentSlideIndex

	v := &View{
		Slides:            cfg.Slides,
		NextSlideID:       cfg.NextSlideID,
		CurrentSlideIndex: index,
		FigmaPAT:          cfg.FigmaPAT,
		EditingFigmaPAT:   st.session.EditingFigmaPAT,
		ButtonTargets:     cfg.ButtonTargets(),
		FontStylesheets:   in.fonts.LoadDeck(cfg.Slides),
		Capabilities:      cfg.Capabilities(index),
	}
	if v.FontStylesheets == nil {
		v.FontStylesheets = []string{}
	}
	if index < len(cfg.Slides) {
		selected := cfg.Slides[index]
		v.SelectedSlide = &selected
	}
	return v
}

func (in *Inspector) View(ctx context.Context, frameID, ownerID string) (*View, error) {
	defer in.locks.lock(frameID)()
	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := in.saveSession(ctx, st); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

func (in *Inspector) SelectSlide(ctx context.Context, frameID, ownerID string, index int) (*View, error) {
	defer in.locks.lock(frameID)()
	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := in.selectSlide(ctx, st, index); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

func (in *Inspector) AddSlide(ctx context.Context, frameID, ownerID string) (*View, error) {
	defer in.locks.lock(frameID)()
	log.Printf("Inspector::addSlide(%s)", frameID)

	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}

	updated, index := st.config.AddSlide()
	if err := in.save(ctx, frameID, updated); err != nil {
		return nil, err
	}
	st.config = updated

	// Selecting length-1 of the deck read before the update used to land on the
	// previous last slide. The index comes from the saved deck instead.
	if err := in.selectSlide(ctx, st, index); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

func (in *Inspector) RemoveSlide(ctx context.Context, frameID, ownerID string) (*View, error) {
	defer in.locks.lock(frameID)()
	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}
	log.Printf("Inspector::removeSlide(%s, %d)", frameID, st.session.CurrentSlideIndex)

	updated, next, err := st.config.RemoveSlide(st.session.CurrentSlideIndex)
	if err != nil {
		return nil, err
	}
	if err := in.save(ctx, frameID, updated); err != nil {
		return nil, err
	}
	st.config = updated

	if err := in.selectSlide(ctx, st, next); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

func (in *Inspector) SwapSlide(ctx context.Context, frameID, ownerID string, direction Direction) (*View, error) {
	defer in.locks.lock(frameID)()
	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}
	log.Printf("Inspector::moveSlide(%s, %d, %s)", frameID, st.session.CurrentSlideIndex, direction)

	updated, moved, err := st.config.SwapSlide(st.session.CurrentSlideIndex, direction)
	if err != nil {
		return nil, err
	}
	if err := in.save(ctx, frameID, updated); err != nil {
		return nil, err
	}
	st.config = updated

	if err := in.selectSlide(ctx, st, moved); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

// UpdateSlide replaces the active slide with an edited copy.
func (in *Inspector) UpdateSlide(ctx context.Context, frameID, ownerID string, slide SlideConfig) (*View, error) {
	defer in.locks.lock(frameID)()
	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}
	log.Printf("Inspector::updateSlide(%s, id=%s)", frameID, st.config.Slides[st.session.CurrentSlideIndex].ID)

	updated, err := st.config.ReplaceSlide(st.session.CurrentSlideIndex, slide)
	if err != nil {
		return nil, err
	}
	if err := in.save(ctx, frameID, updated); err != nil {
		return nil, err
	}
	st.config = updated
	return in.view(st), nil
}

// ### FIGMA PAT ### \\

func (in *Inspector) setEditingFigmaPAT(ctx context.Context, frameID, ownerID string, editing bool) (*View, error) {
	defer in.locks.lock(frameID)()
	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}
	st.session.EditingFigmaPAT = editing
	if err := in.saveSession(ctx, st); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

// RequestFigmaPATEdit opens the token form.
func (in *Inspector) RequestFigmaPATEdit(ctx context.Context, frameID, ownerID string) (*View, error) {
	return in.setEditingFigmaPAT(ctx, frameID, ownerID, true)
}

// CancelFigmaPATEdit closes the token form and leaves the stored token alone.
func (in *Inspector) CancelFigmaPATEdit(ctx context.Context, frameID, ownerID string) (*View, error) {
	return in.setEditingFigmaPAT(ctx, frameID, ownerID, false)
}

// UpdateFigmaPAT stores a new token and closes the token form.
func (in *Inspector) UpdateFigmaPAT(ctx context.Context, frameID, ownerID, token string) (*View, error) {
	defer in.locks.lock(frameID)()
	log.Printf("Inspector::updateFigmaPAT(%s)", frameID)

	st, err := in.load(ctx, frameID, ownerID)
	if err != nil {
		return nil, err
	}

	updated := *st.config
	updated.FigmaPAT = token
	if err := in.save(ctx, frameID, &updated); err != nil {
		return nil, err
	}
	st.config = &updated

	st.session.EditingFigmaPAT = false
	if err := in.saveSession(ctx, st); err != nil {
		return nil, err
	}
	return in.view(st), nil
}

// SlidePreview is the preview payload that renders one slide.
func SlidePreview(slideID string) cache.PreviewPayload {
	return cache.PreviewPayload{
		Handler:     "slide",
		ButtonIndex: 0,
		InputText:   "",
		Params:      "slideId=" + slideID,
	}
}

func DecodeConfig(raw []byte) (*FramePressConfig, error) {
	var cfg FramePressConfig
	if len(raw) == 0 {
		return &cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("invalid figma config: %w", err)
	}
	return &cfg, nil
}

func jsonConfig(cfg *FramePressConfig) ([]byte, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal figma config: %w", err)
	}
	return data, nil
}
