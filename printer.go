package postcss

import (
	"bytes"
	"io"

	"github.com/iamdustan/postcss/token"
)

// Printer writes tokens back out as source text.
type Printer struct {
	// StripComments drops comment tokens from the output.
	StripComments bool
}

// Print writes the raw text of each token to w.
func (p *Printer) Print(w io.Writer, tokens []token.Token) (err error) {
	for _, tok := range tokens {
		if _, ok := tok.(*token.Comment); ok && p.StripComments {
			continue
		}
		if _, err = io.WriteString(w, tok.Raw()); err != nil {
			return err
		}
	}
	return nil
}

// Print writes tokens to w using the default printer configuration.
func Print(w io.Writer, tokens []token.Token) error {
	var p Printer
	return p.Print(w, tokens)
}

// String returns the source text for a list of tokens.
func String(tokens []token.Token) string {
	var buf bytes.Buffer
	_ = Print(&buf, tokens)
	return buf.String()
}
