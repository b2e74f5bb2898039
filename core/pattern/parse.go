// core/pattern/parse.go
package pattern

import (
	"fmt"
	"io"
	"strconv"

	"figmop-core/profile"
)

// Parse reads the assignment format:
//
//	min_matches = 4
//	meme_file = 'meme.txt'
//	matchEmissions = {'M1': {'8': 1.0}, ...}
//	transitionProbabilities = {'R': {'R': 0.9, 'M1': 0.05, 'D1': 0.05}, ...}
//
// Import lines and assignments of call expressions (e.g. model = Hmm(...))
// are skipped. name is used in error positions.
func Parse(r io.Reader, name string) (*File, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	toks, err := lex(src, name)
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, toks: toks}
	f := &File{Name: name}
	seen := map[string]bool{}

	for !p.eof() {
		t := p.next()
		if t.kind != tIdent {
			return nil, p.errorf(t, "expected a name, got %s", t)
		}
		if t.text == "from" || t.text == "import" {
			p.skipLine(t.line)
			continue
		}
		if eq := p.next(); eq.kind != tPunct || eq.text != "=" {
			return nil, p.errorf(eq, "expected '=' after %s", t.text)
		}
		if p.atCall() {
			if err := p.skipCall(); err != nil {
				return nil, err
			}
			continue
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if seen[t.text] {
			return nil, p.errorf(t, "%s assigned twice", t.text)
		}
		seen[t.text] = true
		if err := p.assign(f, t, v); err != nil {
			return nil, err
		}
	}
	if err := f.finish(); err != nil {
		return nil, err
	}
	return f, nil
}

type parser struct {
	name string
	toks []token
	pos  int
}

// value is a parsed literal: a scalar token or a map.
type value struct {
	tok     token
	isMap   bool
	entries []entry
}

type entry struct {
	key token
	val value
}

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) next() token {
	if p.eof() {
		last := 0
		if len(p.toks) > 0 {
			last = p.toks[len(p.toks)-1].line
		}
		return token{kind: tPunct, text: "EOF", line: last}
	}
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) peek(off int) (token, bool) {
	if p.pos+off >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos+off], true
}

func (p *parser) errorf(t token, format string, a ...any) error {
	return fmt.Errorf("%s:%d: %s", p.name, t.line, fmt.Sprintf(format, a...))
}

func (p *parser) skipLine(line int) {
	for !p.eof() && p.toks[p.pos].line == line {
		p.pos++
	}
}

func (p *parser) atCall() bool {
	a, ok := p.peek(0)
	if !ok || a.kind != tIdent {
		return false
	}
	b, ok := p.peek(1)
	return ok && b.kind == tPunct && b.text == "("
}

func (p *parser) skipCall() error {
	start := p.next()
	depth := 0
	for {
		t := p.next()
		if t.text == "EOF" && t.kind == tPunct {
			return p.errorf(start, "unterminated call to %s", start.text)
		}
		if t.kind != tPunct {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}

func (p *parser) value() (value, error) {
	t := p.next()
	switch {
	case t.kind == tPunct && t.text == "{":
		return p.mapValue(t)
	case t.kind == tPunct:
		return value{}, p.errorf(t, "unexpected %s", t)
	}
	return value{tok: t}, nil
}

func (p *parser) mapValue(open token) (value, error) {
	v := value{tok: open, isMap: true}
	keys := map[string]bool{}
	for {
		t := p.next()
		if t.kind == tPunct && t.text == "}" {
			return v, nil
		}
		if t.kind == tPunct && t.text == "EOF" {
			return v, p.errorf(open, "unterminated '{'")
		}
		if t.kind != tString && t.kind != tNumber {
			return v, p.errorf(t, "expected a key, got %s", t)
		}
		if keys[t.text] {
			return v, p.errorf(t, "duplicate key %q", t.text)
		}
		keys[t.text] = true
		if c := p.next(); c.kind != tPunct || c.text != ":" {
			return v, p.errorf(c, "expected ':' after key %q", t.text)
		}
		val, err := p.value()
		if err != nil {
			return v, err
		}
		v.entries = append(v.entries, entry{key: t, val: val})

		sep := p.next()
		if sep.kind == tPunct && sep.text == "}" {
			return v, nil
		}
		if sep.kind != tPunct || sep.text != "," {
			return v, p.errorf(sep, "expected ',' or '}', got %s", sep)
		}
	}
}

func (p *parser) assign(f *File, name token, v value) error {
	switch name.text {
	case KeyMinMatches:
		n, err := p.intValue(name, v)
		f.Settings.MinMatches = n
		return err
	case KeyMaxGenomeRegion:
		n, err := p.intValue(name, v)
		f.Settings.MaxGenomeRegion = n
		return err
	case KeyMemeFile:
		if v.isMap || v.tok.kind != tString {
			return p.errorf(v.tok, "%s must be a string", name.text)
		}
		f.Settings.MemeFile = v.tok.text
		return nil
	case KeyEmissions:
		tbl, err := p.table(name, v, profile.EmissionTable)
		f.Emissions = tbl
		return err
	case KeyTransitions:
		tbl, err := p.table(name, v, profile.TransitionTable)
		f.Transitions = tbl
		return err
	}
	return p.errorf(name, "unknown setting %q", name.text)
}

func (p *parser) intValue(name token, v value) (int, error) {
	if v.isMap || v.tok.kind != tNumber {
		return 0, p.errorf(v.tok, "%s must be an integer", name.text)
	}
	n, err := strconv.Atoi(v.tok.text)
	if err != nil {
		return 0, p.errorf(v.tok, "%s must be an integer, got %s", name.text, v.tok.text)
	}
	return n, nil
}

func (p *parser) table(name token, v value, table string) (profile.Table, error) {
	if !v.isMap {
		return nil, p.errorf(v.tok, "%s must be a map of maps", name.text)
	}
	tbl := make(profile.Table, len(v.entries))
	for _, row := range v.entries {
		if !row.val.isMap {
			return nil, p.errorf(row.val.tok, "%s[%s] must be a map", name.text, row.key.text)
		}
		m := make(map[string]float64, len(row.val.entries))
		for _, e := range row.val.entries {
			w, err := p.weight(table, row.key.text, e)
			if err != nil {
				return nil, err
			}
			m[e.key.text] = w
		}
		tbl[row.key.text] = m
	}
	return tbl, nil
}

func (p *parser) weight(table, state string, e entry) (float64, error) {
	bad := &profile.InvalidWeightError{Table: table, State: state, Key: e.key.text, Raw: e.val.tok.text}
	if e.val.isMap || e.val.tok.kind != tNumber {
		if e.val.isMap {
			bad.Raw = "{...}"
		}
		return 0, fmt.Errorf("%s:%d: %w", p.name, e.val.tok.line, bad)
	}
	w, err := strconv.ParseFloat(e.val.tok.text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s:%d: %w", p.name, e.val.tok.line, bad)
	}
	return w, nil
}
