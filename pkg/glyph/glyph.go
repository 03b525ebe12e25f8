// Package glyph maps goal completion markers and priority flags to the
// symbols the list surfaces render.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Flag    bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs returns the marker table in Marker/Flag declaration order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     "o",
			Symbol:  "○",
			Meaning: "open goal",
		}, {
			Key:     "x",
			Symbol:  "✘",
			Meaning: "goal completed",
		}, {
			Key:     "X",
			Symbol:  "✔",
			Meaning: "goal completed manually",
		}, {
			Key:     ">",
			Symbol:  "›",
			Meaning: "goal pulled to another period",
		}, {
			Key:     "",
			Symbol:  "",
			Meaning: "any",
		}, {
			Key:     "*",
			Symbol:  "★",
			Meaning: "starred",
			Flag:    true,
		}, {
			Key:     "p",
			Symbol:  "⚑",
			Meaning: "pinned",
			Flag:    true,
		}, {
			Key:     " ",
			Symbol:  " ",
			Meaning: "no flag",
			Flag:    true,
		},
	}
}

// Marker is the completion rendering state of a goal.
type Marker int

// Flag is the priority rendering state of a quarterly goal.
type Flag int

const (
	Open Marker = iota
	Done
	HardDone
	Pulled
	Any
	Starred Flag = iota
	Pinned
	NoFlag
)

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().Symbol
}

func (f Flag) Glyph() Glyph {
	return DefaultGlyphs()[f]
}

func (f Flag) String() string {
	return f.Glyph().Symbol
}
