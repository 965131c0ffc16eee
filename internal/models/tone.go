package models

import (
	"fmt"
	"strings"
)

// Tone selects the voice of a generated message.
type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneInformal Tone = "informal"
	ToneFriendly Tone = "friendly"
	ToneUrgent   Tone = "urgent"
)

// Tones lists every valid tone, in form order.
var Tones = []Tone{ToneFormal, ToneInformal, ToneFriendly, ToneUrgent}

// ParseTone validates s as a tone. Matching is exact; tones are
// lowercase on the wire.
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if s == string(t) {
			return t, nil
		}
	}
	valid := make([]string, len(Tones))
	for i, t := range Tones {
		valid[i] = string(t)
	}
	return "", fmt.Errorf("models: unknown tone %q (valid: %s)", s, strings.Join(valid, ", "))
}
