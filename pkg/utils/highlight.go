package utils

import (
	"github.com/fatih/color"
)

// Colors used to render decoded instruction fields
var (
	fieldNameColor    = color.New(color.FgCyan)
	registerNameColor = color.New(color.FgGreen, color.Bold)
	rawValueColor     = color.New(color.FgYellow)
	binaryDigitsColor = color.New(color.FgHiBlack)
)

// Whether to color is decided by Highlighter.Enabled, not by color.NoColor
func init() {
	for _, c := range []*color.Color{fieldNameColor, registerNameColor, rawValueColor, binaryDigitsColor} {
		c.EnableColor()
	}
}

// Applies terminal colors to decoder output. A disabled highlighter returns its input unchanged
type Highlighter struct {
	Enabled bool
}

// Returns a highlighter that colors output only if the terminal supports it and noColor is false
func NewHighlighter(noColor bool) Highlighter {
	return Highlighter{
		Enabled: !noColor && !color.NoColor,
	}
}

func (h Highlighter) paint(c *color.Color, text string) string {
	if !h.Enabled {
		return text
	}

	return c.Sprint(text)
}

// Colors an instruction field name
func (h Highlighter) FieldName(name string) string {
	return h.paint(fieldNameColor, name)
}

// Colors a register mnemonic
func (h Highlighter) Register(name string) string {
	return h.paint(registerNameColor, name)
}

// Colors a raw numeric value shown in place of a register mnemonic
func (h Highlighter) Raw(value string) string {
	return h.paint(rawValueColor, value)
}

// Colors a string of binary digits
func (h Highlighter) Binary(digits string) string {
	return h.paint(binaryDigitsColor, digits)
}
