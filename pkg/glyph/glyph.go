package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

const (
	Unchecked = "☐"
	Checked   = "☑"
	NoteMark  = "⁃"
)

// Checkbox returns the completion glyph for an item.
func Checkbox(done bool) string {
	if done {
		return Checked
	}
	return Unchecked
}

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     " ",
			Symbol:  Unchecked,
			Meaning: "item to buy",
		}, {
			Key:     "x",
			Symbol:  Checked,
			Meaning: "item picked up",
		}, {
			Key:     "-",
			Symbol:  NoteMark,
			Meaning: "note on an item",
		},
	}
}
