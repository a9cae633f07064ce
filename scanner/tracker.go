package scanner

import "github.com/iamdustan/postcss/token"

// tracker maintains the line and character position of the next rune.
type tracker struct {
	pos token.Pos
	cr  bool // previous rune was a carriage return
}

func newTracker() tracker {
	return tracker{pos: token.Pos{Line: 1, Char: 1}}
}

// advance moves the tracker over text and returns the position of the last
// rune consumed. A CR, an LF or a CRLF pair each start exactly one new line.
func (t *tracker) advance(text string) (last token.Pos) {
	last = t.pos
	for _, ch := range text {
		last = t.pos
		switch {
		case ch == '\n' && t.cr:
		case ch == '\r' || ch == '\n':
			t.pos.Line++
			t.pos.Char = 1
		default:
			t.pos.Char++
		}
		t.cr = ch == '\r'
	}
	return last
}
