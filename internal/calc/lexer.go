package calc

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a line into tokens. Whitespace is dropped before runs are
// formed, so "1 2" is the single number 12. Characters that are not part of
// the language come out as TokenInvalid and are rejected by later stages.
func Tokenize(line string) []Token {
	src := make([]byte, 0, len(line))
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		src = append(src, string(r)...)
	}

	var tokens []Token
	for pos := 0; pos < len(src); {
		ch := src[pos]
		switch {
		case isDigit(ch):
			start := pos
			for pos < len(src) && isDigit(src[pos]) {
				pos++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: string(src[start:pos])})
			continue
		case isLetter(ch):
			start := pos
			for pos < len(src) && isLetter(src[pos]) {
				pos++
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: string(src[start:pos])})
			continue
		case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '^':
			tokens = append(tokens, Token{Kind: TokenOperator, Text: string(ch)})
		case ch == '=':
			tokens = append(tokens, Token{Kind: TokenAssign, Text: "="})
		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "("})
		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")"})
		default:
			// Keep multi-byte characters whole.
			_, width := utf8.DecodeRune(src[pos:])
			tokens = append(tokens, Token{Kind: TokenInvalid, Text: string(src[pos : pos+width])})
			pos += width
			continue
		}
		pos++
	}
	return tokens
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isLetter accepts ASCII letters only; variable names are Latin.
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
