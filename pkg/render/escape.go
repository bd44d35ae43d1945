package render

import "strings"

// Literal renders text as the body of a C string literal: newlines
// become \n, carriage returns are dropped, quotes and backslashes are
// escaped, all other bytes pass through.
func Literal(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; ch {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// Uppercase maps ASCII letters to upper case, byte-wise; other bytes are
// unchanged.
func Uppercase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
