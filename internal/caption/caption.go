// Package caption turns a tone and an optional location into a fixed
// template string. There is no model behind it, just a lookup table.
package caption

import (
	"errors"
	"fmt"
)

const (
	ToneProfessional  = "professional"
	ToneCasual        = "casual"
	ToneInspirational = "inspirational"
	ToneHumorous      = "humorous"
)

var ErrUnknownTone = errors.New("unknown tone")

type template struct {
	format          string
	defaultLocation string
}

var templates = map[string]template{
	ToneProfessional: {
		format:          "Exploring %s with purpose and passion. Every journey brings new perspectives and opportunities for growth.",
		defaultLocation: "new destinations",
	},
	ToneCasual: {
		format:          "Just vibing in %s ✨ Can't believe I'm actually here! Living my best life rn 🌟",
		defaultLocation: "this amazing place",
	},
	ToneInspirational: {
		format:          "Sometimes you need to step away from the ordinary to discover the extraordinary. %s reminded me that the world is full of endless possibilities 🌍💫",
		defaultLocation: "This place",
	},
	ToneHumorous: {
		format:          "Me: I'll just take a quick trip\nAlso me: *books 3 months in %s* 😂 No regrets though! #WorthIt",
		defaultLocation: "paradise",
	},
}

// Generate returns the caption for tone with location interpolated, falling
// back to the tone's stock location when location is empty.
func Generate(tone, location string) (string, error) {
	tpl, ok := templates[tone]
	if !ok {
		return "", ErrUnknownTone
	}
	if location == "" {
		location = tpl.defaultLocation
	}
	return fmt.Sprintf(tpl.format, location), nil
}

// Tones lists the supported caption tones.
func Tones() []string {
	return []string{ToneProfessional, ToneCasual, ToneInspirational, ToneHumorous}
}
