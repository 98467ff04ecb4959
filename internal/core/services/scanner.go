package services

import (
	"iter"
	"strings"
)

// trailingPunct is stripped from the right end of a token before alias lookup.
const trailingPunct = `,./;:|"'\`

// Token is one whitespace-delimited word of a lower-cased message.
type Token struct {
	// Raw is the word as it appeared, lower-cased.
	Raw string

	// Word is Raw with its trailing punctuation run removed.
	Word string
}

// Tokens is the scanned form of a message.
type Tokens struct {
	text  string
	items []Token
}

// Scan lower-cases text once and splits it on ASCII whitespace.
func Scan(text string) Tokens {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, isASCIISpace)

	items := make([]Token, len(fields))
	for i, f := range fields {
		items[i] = Token{Raw: f, Word: strings.TrimRight(f, trailingPunct)}
	}
	return Tokens{text: lower, items: items}
}

// Text returns the lower-cased message the tokens were scanned from.
func (t Tokens) Text() string {
	return t.text
}

// Len returns the number of tokens.
func (t Tokens) Len() int {
	return len(t.items)
}

// At returns the token at index i.
func (t Tokens) At(i int) Token {
	return t.items[i]
}

// All iterates over the tokens with their index.
// The sequence can be ranged over any number of times.
func (t Tokens) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, tok := range t.items {
			if !yield(i, tok) {
				return
			}
		}
	}
}

// isASCIISpace matches space, tab, line feed, form feed and carriage return.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
