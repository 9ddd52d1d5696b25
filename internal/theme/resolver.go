// Package theme maps primary color tokens to the class fragments and terminal
// colors used to paint the select control.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultToken is used whenever a token is empty or not recognized.
const DefaultToken = "blue"

// Classes holds the style fragments for one color token.
type Classes struct {
	Token       string
	Ring        string
	BorderFocus string
	Text        string
	TextHover   string
	Bg          string
	BgHover     string
	// Accent is the 500 shade of the token, used by terminal renderers.
	Accent lipgloss.Color
	// Soft is the 100 shade, used for highlighted rows.
	Soft lipgloss.Color
}

type shades struct {
	s100 lipgloss.Color
	s500 lipgloss.Color
}

var palette = map[string]shades{
	"blue":    {s100: "#dbeafe", s500: "#3b82f6"},
	"orange":  {s100: "#ffedd5", s500: "#f97316"},
	"yellow":  {s100: "#fef9c3", s500: "#eab308"},
	"red":     {s100: "#fee2e2", s500: "#ef4444"},
	"purple":  {s100: "#f3e8ff", s500: "#a855f7"},
	"amber":   {s100: "#fef3c7", s500: "#f59e0b"},
	"lime":    {s100: "#ecfccb", s500: "#84cc16"},
	"green":   {s100: "#dcfce7", s500: "#22c55e"},
	"emerald": {s100: "#d1fae5", s500: "#10b981"},
	"teal":    {s100: "#ccfbf1", s500: "#14b8a6"},
	"sky":     {s100: "#e0f2fe", s500: "#0ea5e9"},
	"indigo":  {s100: "#e0e7ff", s500: "#6366f1"},
	"violet":  {s100: "#ede9fe", s500: "#8b5cf6"},
	"fuchsia": {s100: "#fae8ff", s500: "#d946ef"},
	"pink":    {s100: "#fce7f3", s500: "#ec4899"},
	"rose":    {s100: "#ffe4e6", s500: "#f43f5e"},
}

// Resolve returns the classes for token, falling back to DefaultToken.
func Resolve(token string) Classes {
	if !IsKnown(token) {
		token = DefaultToken
	}
	s := palette[token]
	return Classes{
		Token:       token,
		Ring:        "focus:ring-" + token + "-500/20",
		BorderFocus: "focus:border-" + token + "-500",
		Text:        "text-" + token + "-500",
		TextHover:   "hover:text-" + token + "-500",
		Bg:          "bg-" + token + "-500",
		BgHover:     "hover:bg-" + token + "-100",
		Accent:      s.s500,
		Soft:        s.s100,
	}
}

// IsKnown reports whether token is in the recognized set.
func IsKnown(token string) bool {
	_, ok := palette[token]
	return ok
}

// Tokens lists the recognized tokens in alphabetical order.
func Tokens() []string {
	out := make([]string, 0, len(palette))
	for token := range palette {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
