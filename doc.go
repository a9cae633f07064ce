/*
Package postcss implements a lossless scanner for stylesheet source. This is meant
to be a low-level library for breaking raw CSS-like text into positioned tokens
that a tree builder can consume.

This package can be used for building tools to validate, reformat and
re-serialize stylesheets.


Basics

Scanning turns a string into a flat sequence of tokens: words, at-words,
strings, comments, whitespace, control characters and parenthesized runs.
Every token keeps the exact text it was scanned from, so printing the tokens
back in order reproduces the input byte for byte.

Tokens carry one-based line and character positions. Tokens that span text
carry both the position of their first and their last character; control
characters and paren markers carry a single position; whitespace carries none.


Parentheses

A parenthesized run such as "(1px;)" is normally captured as one Brackets
token. If a string or comment opens inside the run before it closes, the run
is instead split into a LeftParen, the individually scanned contents and a
RightParen. This keeps ")" characters inside strings from closing the run:

	url(")")  =>  word "url", left-paren, string "\")\"", right-paren


Errors

Unclosed strings, comments and brackets and characters that cannot start a
token are fatal. The returned *scanner.Error carries the position of the
opening delimiter or offending character and wraps one of the scanner.Err*
kinds for use with errors.Is.

*/
package postcss
