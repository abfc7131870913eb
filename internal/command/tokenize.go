package command

import "strings"

// Default syntax characters.
const (
	DefaultSeparator = ' '
	DefaultQuote     = '"'
	escape           = '\\'
)

// Syntax is the pair of characters that drives tokenizing.
type Syntax struct {
	Separator rune
	Quote     rune
}

// DefaultSyntax splits on spaces and quotes with double quotes.
var DefaultSyntax = Syntax{Separator: DefaultSeparator, Quote: DefaultQuote}

// Tokenize splits line with DefaultSyntax.
func Tokenize(line string) ([]string, error) {
	return DefaultSyntax.Tokenize(line)
}

// TokenizeWith splits line into tokens.
//
// Runs of separators outside quotes collapse. A quote ends any pending
// token and opens a new one that runs to the next unescaped quote;
// inside it, \" stands for a literal quote. A quote left open fails
// with a *ParseError wrapping ErrUnterminatedQuote. A line without any
// tokens yields a single empty token.
func TokenizeWith(line string, separator, quote rune) ([]string, error) {
	var (
		tokens  []string
		b       strings.Builder
		pending bool
	)
	flush := func() {
		tokens = append(tokens, b.String())
		b.Reset()
		pending = false
	}

	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		switch r := rs[i]; {
		case r == quote:
			if pending {
				flush()
			}
			open := i
			closed := false
			for i++; i < len(rs); i++ {
				if rs[i] == escape && i+1 < len(rs) && rs[i+1] == quote {
					b.WriteRune(quote)
					i++
					continue
				}
				if rs[i] == quote {
					closed = true
					break
				}
				b.WriteRune(rs[i])
			}
			if !closed {
				return nil, &ParseError{Line: line, Pos: open, Err: ErrUnterminatedQuote}
			}
			flush()
		case r == separator:
			if pending {
				flush()
			}
		default:
			b.WriteRune(r)
			pending = true
		}
	}
	if pending {
		flush()
	}

	if len(tokens) == 0 {
		return []string{""}, nil
	}
	return tokens, nil
}

// Tokenize splits line using the syntax's characters.
func (s Syntax) Tokenize(line string) ([]string, error) {
	return TokenizeWith(line, s.Separator, s.Quote)
}

// Identifier returns the text before the first separator, or the whole
// line if there is none.
func (s Syntax) Identifier(line string) string {
	if i := strings.IndexRune(line, s.Separator); i >= 0 {
		return line[:i]
	}
	return line
}

// Rest returns the text after the first separator, and false if the line
// has no separator.
func (s Syntax) Rest(line string) (string, bool) {
	i := strings.IndexRune(line, s.Separator)
	if i < 0 {
		return "", false
	}
	return line[i+len(string(s.Separator)):], true
}
