package display

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// Stats counts the characters of a document by bidi class.
type Stats struct {
	LTR     int // strong left-to-right (class L)
	RTL     int // strong right-to-left (classes R and AL)
	Neutral int // digits, punctuation and symbols; whitespace and combining marks are not counted
}

// Analyze classifies every rune of text.
func Analyze(text string) Stats {
	var s Stats
	for len(text) > 0 {
		props, size := bidi.LookupString(text)
		if size <= 0 {
			_, size = utf8.DecodeRuneInString(text)
		}
		switch props.Class() {
		case bidi.L:
			s.LTR++
		case bidi.R, bidi.AL:
			s.RTL++
		case bidi.WS, bidi.B, bidi.S, bidi.BN, bidi.NSM:
			// Separators and marks attached to a base character.
		default:
			s.Neutral++
		}
		text = text[size:]
	}
	return s
}

// Direction reports the dominant direction: LeftToRight or RightToLeft when
// only one strong class occurs, Mixed when both do, Neutral when neither.
func (s Stats) Direction() bidi.Direction {
	switch {
	case s.LTR == 0 && s.RTL == 0:
		return bidi.Neutral
	case s.RTL == 0:
		return bidi.LeftToRight
	case s.LTR == 0:
		return bidi.RightToLeft
	default:
		return bidi.Mixed
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%s · LTR %d · RTL %d · neutral %d", DirectionName(s.Direction()), s.LTR, s.RTL, s.Neutral)
}

// DirectionName returns a short lower-case label for d.
func DirectionName(d bidi.Direction) string {
	switch d {
	case bidi.LeftToRight:
		return "ltr"
	case bidi.RightToLeft:
		return "rtl"
	case bidi.Mixed:
		return "mixed"
	default:
		return "neutral"
	}
}
