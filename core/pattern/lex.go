// core/pattern/lex.go
package pattern

import (
	"fmt"
	"strings"
)

type tokKind int

const (
	tIdent tokKind = iota
	tNumber
	tString
	tPunct
)

type token struct {
	kind tokKind
	text string
	line int
}

func (t token) String() string {
	switch t.kind {
	case tString:
		return fmt.Sprintf("string %q", t.text)
	case tNumber:
		return "number " + t.text
	case tPunct:
		return fmt.Sprintf("%q", t.text)
	}
	return fmt.Sprintf("name %q", t.text)
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lex splits src into tokens. Comments run from '#' to end of line.
func lex(src []byte, name string) ([]token, error) {
	var toks []token
	line := 1
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ', c == '\t', c == '\r', c == '\f', c == '\\' && i+1 < len(src) && src[i+1] == '\n':
			i++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '\'' || c == '"':
			s, n, err := lexString(src[i:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", name, line, err)
			}
			toks = append(toks, token{kind: tString, text: s, line: line})
			i += n
		case isDigit(c) || ((c == '-' || c == '+' || c == '.') && i+1 < len(src) && (isDigit(src[i+1]) || src[i+1] == '.')):
			j := i + 1
			for j < len(src) {
				d := src[j]
				if isDigit(d) || d == '.' || d == 'e' || d == 'E' || isIdentByte(d, false) ||
					((d == '-' || d == '+') && (src[j-1] == 'e' || src[j-1] == 'E')) {
					j++
					continue
				}
				break
			}
			toks = append(toks, token{kind: tNumber, text: string(src[i:j]), line: line})
			i = j
		case isIdentByte(c, true):
			j := i + 1
			for j < len(src) && (isIdentByte(src[j], false) || src[j] == '.') {
				j++
			}
			toks = append(toks, token{kind: tIdent, text: string(src[i:j]), line: line})
			i = j
		case strings.IndexByte("={}:,()[]", c) >= 0:
			toks = append(toks, token{kind: tPunct, text: string(c), line: line})
			i++
		default:
			return nil, fmt.Errorf("%s:%d: unexpected character %q", name, line, c)
		}
	}
	return toks, nil
}

// lexString reads a quoted string at the start of b and returns its value
// and the number of bytes consumed.
func lexString(b []byte) (string, int, error) {
	quote := b[0]
	var sb strings.Builder
	for i := 1; i < len(b); i++ {
		c := b[i]
		switch {
		case c == quote:
			return sb.String(), i + 1, nil
		case c == '\n':
			return "", 0, fmt.Errorf("unterminated string")
		case c == '\\' && i+1 < len(b):
			i++
			switch b[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(b[i])
			}
		default:
			sb.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("unterminated string")
}
