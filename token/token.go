package token

import "fmt"

// Token represents a lexical token.
//
// Raw returns the exact source text the token was scanned from. Joining the
// raw text of every token in a stream reproduces the original input.
type Token interface {
	Raw() string
	token()
}

func (_ *Word) token()       {}
func (_ *AtWord) token()     {}
func (_ *String) token()     {}
func (_ *Comment) token()    {}
func (_ *Control) token()    {}
func (_ *Brackets) token()   {}
func (_ *Space) token()      {}
func (_ *LeftParen) token()  {}
func (_ *RightParen) token() {}
func (_ *EOF) token()        {}

// Word is a run of word characters, a "!"-prefixed word or an escape run.
type Word struct {
	Value string
	Pos   Pos
	End   Pos
}

// AtWord is an "@" followed by the at-rule name, if any.
type AtWord struct {
	Value string
	Pos   Pos
	End   Pos
}

// String is a quoted string. Value includes both quotes.
type String struct {
	Value string
	Pos   Pos
	End   Pos
}

// Comment is a "/* ... */" comment, delimiters included.
type Comment struct {
	Value string
	Pos   Pos
	End   Pos
}

// Control is one of the structural characters "{", "}", ":", ";" or ")".
type Control struct {
	Value string
	Pos   Pos
}

// Brackets is a parenthesized run captured as a single token because it
// contains no strings or comments.
type Brackets struct {
	Value string
	Pos   Pos
	End   Pos
}

// Space is a run of whitespace.
type Space struct {
	Value string
}

// LeftParen opens a parenthesized run whose contents are tokenized individually.
type LeftParen struct {
	Pos Pos
}

// RightParen closes the run opened by a LeftParen.
type RightParen struct {
	Pos Pos
}

// EOF marks the end of the stream. It is returned by pull scanning only.
type EOF struct {
	Pos Pos
}

func (t *Word) Raw() string       { return t.Value }
func (t *AtWord) Raw() string     { return t.Value }
func (t *String) Raw() string     { return t.Value }
func (t *Comment) Raw() string    { return t.Value }
func (t *Control) Raw() string    { return t.Value }
func (t *Brackets) Raw() string   { return t.Value }
func (t *Space) Raw() string      { return t.Value }
func (t *LeftParen) Raw() string  { return "(" }
func (t *RightParen) Raw() string { return ")" }
func (t *EOF) Raw() string        { return "" }

// Kind returns the stable name of the token's type.
func Kind(tok Token) string {
	switch tok.(type) {
	case *Word:
		return "word"
	case *AtWord:
		return "at-word"
	case *String:
		return "string"
	case *Comment:
		return "comment"
	case *Control:
		return "control"
	case *Brackets:
		return "brackets"
	case *Space:
		return "space"
	case *LeftParen:
		return "left-paren"
	case *RightParen:
		return "right-paren"
	case *EOF:
		return "eof"
	}
	return ""
}

// Span returns the start and end positions of a token.
// Tokens that occupy a single position return it as both start and end.
// Space tokens carry no position and return ok == false.
func Span(tok Token) (start, end Pos, ok bool) {
	switch tok := tok.(type) {
	case *Word:
		return tok.Pos, tok.End, true
	case *AtWord:
		return tok.Pos, tok.End, true
	case *String:
		return tok.Pos, tok.End, true
	case *Comment:
		return tok.Pos, tok.End, true
	case *Brackets:
		return tok.Pos, tok.End, true
	case *Control:
		return tok.Pos, tok.Pos, true
	case *LeftParen:
		return tok.Pos, tok.Pos, true
	case *RightParen:
		return tok.Pos, tok.Pos, true
	case *EOF:
		return tok.Pos, tok.Pos, true
	}
	return Pos{}, Pos{}, false
}

// Pos specifies the line and character position of a token.
// The Char and Line are both one-based indexes; Char counts runes.
type Pos struct {
	Line int
	Char int
}

// String returns the position formatted as "line:char".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Char)
}
