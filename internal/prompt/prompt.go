// Package prompt composes the text sent to the image model from the style
// and color presets offered to users.
package prompt

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrInvalidStyle       = errors.New("invalid style")
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

var stylePresets = map[string]string{
	"Bold & Graphic":  "eye-catching thumbnail, bold typography, vibrant colors, expressive facial reaction, dramatic lighting, high contrast, click-worthy composition, professional style",
	"Tech/Futuristic": "futuristic thumbnail, sleek modern design, digital UI elements, glowing accents, holographic effects, cyber-tech aesthetic, sharp lighting, high-tech atmosphere",
	"Minimalist":      "minimalist thumbnail, clean layout, simple shapes, limited color palette, plenty of negative space, modern flat design, clear focal point",
	"Photorealistic":  "photorealistic thumbnail, ultra-realistic lighting, natural skin tones, candid moment, DSLR-style photography, lifestyle realism, shallow depth of field",
	"Illustrated":     "illustrated thumbnail, custom digital illustration, stylized characters, bold outlines, vibrant colors, creative cartoon or vector art style",
}

var colorPresets = map[string]string{
	"vibrant":    "vibrant and energetic colors, high saturation, bold contrasts, eye-catching palette",
	"sunset":     "warm sunset tones, orange pink and purple hues, soft gradients, cinematic glow",
	"forest":     "natural green tones, earthy colors, calm and organic palette, fresh atmosphere",
	"neon":       "neon glow effects, electric blues and pinks, cyberpunk lighting, high contrast glow",
	"purple":     "purple-dominant color palette, magenta and violet tones, modern and stylish mood",
	"monochrome": "black and white color scheme, high contrast, dramatic lighting, timeless aesthetic",
	"ocean":      "cool blue and teal tones, aquatic color palette, fresh and clean atmosphere",
	"pastel":     "soft pastel colors, low saturation, gentle tones, calm and friendly aesthetic",
}

const closing = "Wide shot, 16:9 composition, ultra detailed, 4K quality, cinematic lighting, sharp focus, no text, no watermark."

type Request struct {
	Title       string
	UserPrompt  string
	Style       string
	ColorScheme string
}

// Style returns the descriptive phrase of a style preset.
func Style(key string) (string, bool) {
	phrase, ok := stylePresets[key]
	return phrase, ok
}

// ColorScheme returns the descriptive phrase of a color preset.
func ColorScheme(key string) (string, bool) {
	phrase, ok := colorPresets[key]
	return phrase, ok
}

func Styles() []string {
	return sortedKeys(stylePresets)
}

func ColorSchemes() []string {
	return sortedKeys(colorPresets)
}

// Build returns the prompt for req. Color and scene clauses are only added
// when ColorScheme and UserPrompt are set.
func Build(req Request) (string, error) {
	style, ok := Style(req.Style)
	if !ok {
		return "", fmt.Errorf("%w %q, expected one of: %s", ErrInvalidStyle, req.Style, strings.Join(Styles(), ", "))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Professional YouTube thumbnail for \"%s\". ", req.Title)
	fmt.Fprintf(&b, "Style: %s. ", style)

	if req.ColorScheme != "" {
		color, ok := ColorScheme(req.ColorScheme)
		if !ok {
			return "", fmt.Errorf("%w %q, expected one of: %s", ErrInvalidColorScheme, req.ColorScheme, strings.Join(ColorSchemes(), ", "))
		}
		fmt.Fprintf(&b, "Color scheme: %s. ", color)
	}

	if req.UserPrompt != "" {
		fmt.Fprintf(&b, "Scene: %s. ", req.UserPrompt)
	}

	b.WriteString(closing)

	return b.String(), nil
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
