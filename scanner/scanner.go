package scanner

import (
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iamdustan/postcss/token"
)

// eof represents the end of the source.
const eof rune = -1

// DefaultMaxDepth is the default limit on nested parentheses whose contents
// are tokenized individually.
const DefaultMaxDepth = 1024

// Options configures a Scanner.
type Options struct {
	// Lenient absorbs characters that cannot start a token into word tokens
	// instead of failing with ErrUnexpectedCharacter.
	Lenient bool

	// MaxDepth limits the number of simultaneously open LeftParen tokens.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Scanner splits stylesheet source into tokens.
//
// The scanner works over an in-memory copy of the source and never reads
// ahead of the token it is producing except to decide how to tokenize a
// parenthesized run. The first error is fatal: every later call to Scan
// returns it again.
type Scanner struct {
	src string
	off int
	tr  tracker

	// Positions of open LeftParen tokens, innermost last.
	parens []token.Pos

	lenient  bool
	maxDepth int

	err error
}

// New returns a new instance of Scanner with default options.
func New(src string) *Scanner {
	return NewWithOptions(src, Options{})
}

// NewWithOptions returns a new instance of Scanner.
func NewWithOptions(src string, opts Options) *Scanner {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Scanner{
		src:      src,
		tr:       newTracker(),
		lenient:  opts.Lenient,
		maxDepth: opts.MaxDepth,
	}
}

// NewReader reads all of r and returns a Scanner over its contents.
func NewReader(r io.Reader, opts Options) (*Scanner, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewWithOptions(string(b), opts), nil
}

// Pos returns the position of the next rune to be scanned.
func (s *Scanner) Pos() token.Pos {
	return s.tr.pos
}

// Scan returns the next token. At the end of the source it returns a
// *token.EOF; it never returns a nil token with a nil error.
func (s *Scanner) Scan() (token.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	tok, err := s.scan()
	if err != nil {
		s.err = err
		return nil, err
	}
	return tok, nil
}

// All scans the remaining source and returns its tokens, excluding the EOF.
func (s *Scanner) All() ([]token.Token, error) {
	var a []token.Token
	for {
		tok, err := s.Scan()
		if err != nil {
			return nil, err
		} else if _, ok := tok.(*token.EOF); ok {
			return a, nil
		}
		a = append(a, tok)
	}
}

// Tokens returns an iterator over the remaining tokens. Iteration stops after
// the last token or after yielding the first error.
func (s *Scanner) Tokens() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := s.Scan()
			if err != nil {
				yield(nil, err)
				return
			} else if _, ok := tok.(*token.EOF); ok {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func (s *Scanner) scan() (token.Token, error) {
	ch, _ := s.runeAt(s.off)
	if ch == eof {
		if n := len(s.parens); n > 0 {
			return nil, newError(ErrUnterminatedBracket, s.parens[n-1], "unclosed bracket")
		}
		return &token.EOF{Pos: s.tr.pos}, nil
	}

	switch {
	case ch == ')' && len(s.parens) > 0:
		return s.scanRightParen(), nil
	case isControl(ch):
		return s.scanControl(), nil
	case ch == '(':
		return s.scanParenGroup()
	case ch == '"' || ch == '\'':
		return s.scanString()
	case ch == '@':
		return s.scanAtWord(), nil
	case ch == '\\':
		return s.scanEscape(), nil
	case isWhitespace(ch):
		return s.scanWhitespace(), nil
	case s.isCommentStart(s.off):
		return s.scanComment()
	case ch == '!' || isWordChar(ch) || s.lenient:
		return s.scanWord(), nil
	}
	return nil, newError(ErrUnexpectedCharacter, s.tr.pos, "unexpected character %q", ch)
}

// scanWhitespace consumes the current code point and all subsequent whitespace.
func (s *Scanner) scanWhitespace() token.Token {
	end := s.off
	for {
		ch, n := s.runeAt(end)
		if !isWhitespace(ch) {
			break
		}
		end += n
	}
	value, _, _ := s.consume(end)
	return &token.Space{Value: value}
}

// scanWord consumes an optional "!" followed by word characters.
// A "!" always starts a new word so "a!b" is two words.
func (s *Scanner) scanWord() token.Token {
	end := s.off
	if ch, n := s.runeAt(end); ch == '!' {
		end += n
	}
	for {
		ch, n := s.runeAt(end)
		if !s.isWordRune(ch, end) {
			break
		}
		end += n
	}
	value, pos, last := s.consume(end)
	return &token.Word{Value: value, Pos: pos, End: last}
}

// scanControl consumes a single structural character.
func (s *Scanner) scanControl() token.Token {
	_, n := s.runeAt(s.off)
	value, pos, _ := s.consume(s.off + n)
	return &token.Control{Value: value, Pos: pos}
}

// scanEscape consumes a backslash run and the character it escapes, if any.
// The result is returned as a word.
func (s *Scanner) scanEscape() token.Token {
	value, pos, last := s.consume(s.escapeEnd(s.off))
	return &token.Word{Value: value, Pos: pos, End: last}
}

// escapeEnd returns the offset just past the escape starting at off.
//
// An even run of backslashes escapes itself. An odd run also escapes the
// following character unless it is a slash, space, tab or line break.
func (s *Scanner) escapeEnd(off int) int {
	end := off
	for end < len(s.src) && s.src[end] == '\\' {
		end++
	}
	if (end-off)%2 == 1 {
		if ch, n := s.runeAt(end); ch != eof && !isEscapeStop(ch) {
			end += n
		}
	}
	return end
}

// scanString consumes a quoted string, quotes included.
// Escaped quotes do not close the string; line breaks are allowed.
func (s *Scanner) scanString() (token.Token, error) {
	quote, end := s.runeAt(s.off)
	end += s.off
	for {
		ch, n := s.runeAt(end)
		switch ch {
		case eof:
			return nil, newError(ErrUnterminatedString, s.tr.pos, "unclosed quote")
		case '\\':
			end += n
			_, n = s.runeAt(end)
		case quote:
			value, pos, last := s.consume(end + n)
			return &token.String{Value: value, Pos: pos, End: last}, nil
		}
		end += n
	}
}

// scanComment consumes all characters from "/*" up to "*/", inclusive.
func (s *Scanner) scanComment() (token.Token, error) {
	i := strings.Index(s.src[s.off+2:], "*/")
	if i == -1 {
		return nil, newError(ErrUnterminatedComment, s.tr.pos, "unclosed comment")
	}
	value, pos, last := s.consume(s.off + 2 + i + 2)
	return &token.Comment{Value: value, Pos: pos, End: last}, nil
}

// scanAtWord consumes an "@" and the name following it.
func (s *Scanner) scanAtWord() token.Token {
	end := s.off + 1
	for {
		ch, n := s.runeAt(end)
		if ch == eof || isWhitespace(ch) || isAtWordStop(ch) {
			break
		}
		end += n
	}
	value, pos, last := s.consume(end)
	return &token.AtWord{Value: value, Pos: pos, End: last}
}

// scanParenGroup consumes a parenthesized run.
//
// The run is looked ahead to its matching ")". If no unescaped quote or
// comment opens before then, the whole run becomes a single Brackets token.
// Otherwise only the "(" is returned, as a LeftParen, and its position is
// pushed onto the paren stack so the matching ")" becomes a RightParen.
func (s *Scanner) scanParenGroup() (token.Token, error) {
	depth := 0
	end := s.off
	for {
		ch, n := s.runeAt(end)
		switch {
		case ch == eof:
			return nil, newError(ErrUnterminatedBracket, s.tr.pos, "unclosed bracket")
		case ch == '\\':
			end = s.escapeEnd(end)
			continue
		case ch == '"' || ch == '\'' || s.isCommentStart(end):
			return s.scanLeftParen()
		case ch == '(':
			depth++
		case ch == ')':
			depth--
		}
		end += n

		if depth == 0 {
			value, pos, last := s.consume(end)
			return &token.Brackets{Value: value, Pos: pos, End: last}, nil
		}
	}
}

// scanLeftParen consumes a "(" and opens a new paren level.
func (s *Scanner) scanLeftParen() (token.Token, error) {
	if len(s.parens) >= s.maxDepth {
		return nil, newError(ErrNestingTooDeep, s.tr.pos, "more than %d nested brackets", s.maxDepth)
	}
	_, pos, _ := s.consume(s.off + 1)
	s.parens = append(s.parens, pos)
	return &token.LeftParen{Pos: pos}, nil
}

// scanRightParen consumes a ")" and closes the innermost paren level.
func (s *Scanner) scanRightParen() token.Token {
	_, pos, _ := s.consume(s.off + 1)
	s.parens = s.parens[:len(s.parens)-1]
	return &token.RightParen{Pos: pos}
}

// consume advances the scanner to end and returns the consumed text along
// with the positions of its first and last runes.
func (s *Scanner) consume(end int) (value string, pos, last token.Pos) {
	value, pos = s.src[s.off:end], s.tr.pos
	last = s.tr.advance(value)
	s.off = end
	return value, pos, last
}

// runeAt decodes the rune at byte offset off.
// It returns eof and a zero size past the end of the source.
func (s *Scanner) runeAt(off int) (rune, int) {
	if off >= len(s.src) {
		return eof, 0
	}
	if b := s.src[off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(s.src[off:])
}

// isCommentStart returns true if a "/*" begins at off.
func (s *Scanner) isCommentStart(off int) bool {
	return strings.HasPrefix(s.src[off:], "/*")
}

// isWordRune returns true if ch at off continues a word.
// In lenient mode any rune that cannot start another token does.
func (s *Scanner) isWordRune(ch rune, off int) bool {
	if isWordChar(ch) {
		return true
	} else if !s.lenient || ch == eof || ch == '!' || isWhitespace(ch) || isSpecial(ch) {
		return false
	}
	return !s.isCommentStart(off)
}

// isWhitespace returns true if the rune is Unicode white space.
// Only CR and LF start new lines; other white space advances the column.
func isWhitespace(ch rune) bool {
	return unicode.IsSpace(ch)
}

// isWordChar returns true if the rune is a letter, digit or underscore.
func isWordChar(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// isControl returns true if the rune is a single-character control token.
func isControl(ch rune) bool {
	return ch == '{' || ch == '}' || ch == ':' || ch == ';' || ch == ')'
}

// isSpecial returns true if the rune starts a token other than a word.
func isSpecial(ch rune) bool {
	return isControl(ch) || ch == '(' || ch == '"' || ch == '\'' || ch == '@' || ch == '\\'
}

// isEscapeStop returns true if the rune cannot be escaped by a backslash.
func isEscapeStop(ch rune) bool {
	return ch == '/' || ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r'
}

// isAtWordStop returns true if the rune ends an at-word.
func isAtWordStop(ch rune) bool {
	switch ch {
	case '{', '}', '(', ')', ':', ';', '\'', '"', ',':
		return true
	}
	return false
}
