package figma

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

const (
	defaultFontWeight = 400
	defaultFontStyle  = "normal"
)

type FontConfig struct {
	FontFamily string `json:"fontFamily"`
	FontWeight int    `json:"fontWeight"`
	FontStyle  string `json:"fontStyle"`
}

func NewFontConfig(family string, weight int, style string) FontConfig {
	if weight == 0 {
		weight = defaultFontWeight
	}
	if style == "" {
		style = defaultFontStyle
	}
	return FontConfig{FontFamily: family, FontWeight: weight, FontStyle: style}
}

func (f FontConfig) Key() string {
	return fmt.Sprintf("%s-%d-%s", f.FontFamily, f.FontWeight, f.FontStyle)
}

// StylesheetURL is the Google Fonts css2 request for this exact face.
func (f FontConfig) StylesheetURL() string {
	family := strings.ReplaceAll(f.FontFamily, " ", "+")
	italic := "0"
	if f.FontStyle == "italic" {
		italic = "1"
	}
	return fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s:ital,wght@%s,%d&display=swap", family, italic, f.FontWeight)
}

// IdentifyFontsUsed returns the distinct fonts referenced by a slide's text layers, ordered by key.
func IdentifyFontsUsed(textLayers TextLayerConfigs) []FontConfig {
	seen := make(map[string]FontConfig)
	for _, layer := range textLayers {
		if layer.FontFamily == "" {
			continue
		}
		font := NewFontConfig(layer.FontFamily, layer.FontWeight, layer.FontStyle)
		seen[font.Key()] = font
	}

	fonts := make([]FontConfig, 0, len(seen))
	for _, font := range seen {
		fonts = append(fonts, font)
	}
	sort.Slice(fonts, func(i, j int) bool { return fonts[i].Key() < fonts[j].Key() })
	return fonts
}

// FontLoader remembers which font keys have been requested for the lifetime of the process.
type FontLoader struct {
	mu     sync.Mutex
	loaded map[string]struct{}
}

func NewFontLoader() *FontLoader {
	return &FontLoader{loaded: make(map[string]struct{})}
}

// Fonts is the process wide loader. It is never reset.
var Fonts = NewFontLoader()

// Load returns the stylesheet url for font and whether this call was the first request for it.
func (l *FontLoader) Load(font FontConfig) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := font.Key()
	if _, ok := l.loaded[key]; ok {
		log.Printf("loadGoogleFont(%s): already loaded", key)
		return font.StylesheetURL(), false
	}
	l.loaded[key] = struct{}{}
	log.Printf("loadGoogleFont(%s): loaded", key)
	return font.StylesheetURL(), true
}

func (l *FontLoader) Loaded(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.loaded[key]
	return ok
}

// LoadDeck registers every font the deck uses and returns their stylesheets in deck order.
func (l *FontLoader) LoadDeck(slides []SlideConfig) []string {
	seen := make(map[string]bool)
	var stylesheets []string
	for _, slide := range slides {
		for _, font := range IdentifyFontsUsed(slide.TextLayers) {
			if seen[font.Key()] {
				continue
			}
			seen[font.Key()] = true
			url, _ := l.Load(font)
			stylesheets = append(stylesheets, url)
		}
	}
	return stylesheets
}
