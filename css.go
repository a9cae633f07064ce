package postcss

import (
	"github.com/iamdustan/postcss/scanner"
	"github.com/iamdustan/postcss/token"
)

// Tokenize scans src with the default options and returns its tokens.
func Tokenize(src string) ([]token.Token, error) {
	return scanner.New(src).All()
}
