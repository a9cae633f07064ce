// Package dump renders token streams in stable formats for inspection and
// golden-file comparison.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/iamdustan/postcss/token"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown dump format %q", s)
}

// Position is the serialized form of token.Pos.
type Position struct {
	Line int `json:"line" yaml:"line"`
	Char int `json:"char" yaml:"char"`
}

// Record is the serialized form of a single token.
type Record struct {
	Kind  string    `json:"kind" yaml:"kind"`
	Value string    `json:"value" yaml:"value"`
	Start *Position `json:"start,omitempty" yaml:"start,omitempty"`
	End   *Position `json:"end,omitempty" yaml:"end,omitempty"`
}

// NewRecord returns the record for tok. Single-position tokens have no End.
func NewRecord(tok token.Token) Record {
	r := Record{Kind: token.Kind(tok), Value: tok.Raw()}
	start, end, ok := token.Span(tok)
	if !ok {
		return r
	}
	r.Start = &Position{Line: start.Line, Char: start.Char}
	switch tok.(type) {
	case *token.Control, *token.LeftParen, *token.RightParen, *token.EOF:
	default:
		r.End = &Position{Line: end.Line, Char: end.Char}
	}
	return r
}

// MarshalYAML encodes r with its value as a double-quoted scalar. A value
// made only of line breaks does not survive as a plain or block scalar.
func (r Record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content,
		yamlScalar("!!str", "kind"), yamlScalar("!!str", r.Kind),
		yamlScalar("!!str", "value"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Value, Style: yaml.DoubleQuotedStyle},
	)
	if r.Start != nil {
		n.Content = append(n.Content, yamlScalar("!!str", "start"), r.Start.yamlNode())
	}
	if r.End != nil {
		n.Content = append(n.Content, yamlScalar("!!str", "end"), r.End.yamlNode())
	}
	return n, nil
}

func (p *Position) yamlNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		yamlScalar("!!str", "line"), yamlScalar("!!int", strconv.Itoa(p.Line)),
		yamlScalar("!!str", "char"), yamlScalar("!!int", strconv.Itoa(p.Char)),
	}}
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// Records converts a token list to records.
func Records(tokens []token.Token) []Record {
	a := make([]Record, 0, len(tokens))
	for _, tok := range tokens {
		a = append(a, NewRecord(tok))
	}
	return a
}

// Encoder writes token lists to an output stream.
type Encoder struct {
	w io.Writer

	// Format selects the output format. Defaults to FormatText.
	Format Format

	// Color styles the kind column of text output.
	Color bool
}

// NewEncoder returns a new text encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, Format: FormatText}
}

// Encode writes tokens in the encoder's format.
func (e *Encoder) Encode(tokens []token.Token) error {
	records := Records(tokens)
	switch e.Format {
	case FormatJSON:
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for _, r := range records {
			if _, err := io.WriteString(e.w, e.line(r)+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown dump format %q", e.Format)
}

// Write encodes tokens to w in format f.
func Write(w io.Writer, tokens []token.Token, f Format) error {
	e := NewEncoder(w)
	e.Format = f
	return e.Encode(tokens)
}

// Text returns the text form of tokens.
func Text(tokens []token.Token) string {
	var sb strings.Builder
	_ = Write(&sb, tokens, FormatText)
	return sb.String()
}

// line formats a record as `kind "value" start[-end]`.
func (e *Encoder) line(r Record) string {
	kind := r.Kind
	if e.Color {
		kind = kindStyle(r.Kind).Render(kind)
	}
	s := kind + " " + strconv.Quote(r.Value)
	if r.Start != nil {
		s += fmt.Sprintf(" %d:%d", r.Start.Line, r.Start.Char)
	}
	if r.End != nil {
		s += fmt.Sprintf("-%d:%d", r.End.Line, r.End.Char)
	}
	return s
}

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	atWordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	stringStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	controlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	parenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	plainStyle   = lipgloss.NewStyle()
)

func kindStyle(kind string) lipgloss.Style {
	switch kind {
	case "word":
		return wordStyle
	case "at-word":
		return atWordStyle
	case "string":
		return stringStyle
	case "comment":
		return commentStyle
	case "control":
		return controlStyle
	case "brackets", "left-paren", "right-paren":
		return parenStyle
	}
	return plainStyle
}
