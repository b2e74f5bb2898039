// core/profile/state.go
package profile

import (
	"fmt"
	"strconv"
)

// Kind tags a profile-HMM state.
type Kind uint8

// State kinds. The order is the canonical order of states inside a column.
const (
	Random Kind = iota
	Match
	Insert
	Delete
)

// Kinds lists the column kinds (everything but Random).
var Kinds = [...]Kind{Match, Insert, Delete}

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case Match:
		return "match"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Letter returns the label prefix used for k.
func (k Kind) Letter() byte {
	switch k {
	case Match:
		return 'M'
	case Insert:
		return 'I'
	case Delete:
		return 'D'
	}
	return 'R'
}

// State identifies one state of the profile. Column is 1-based and is 0
// for the random state.
type State struct {
	Kind   Kind
	Column int
}

// R is the random (background) state.
var R = State{Kind: Random}

func M(k int) State { return State{Kind: Match, Column: k} }
func I(k int) State { return State{Kind: Insert, Column: k} }
func D(k int) State { return State{Kind: Delete, Column: k} }

// String renders the canonical label ("R", "M3", ...).
func (s State) String() string {
	if s.Kind == Random {
		return "R"
	}
	return string(s.Kind.Letter()) + strconv.Itoa(s.Column)
}

// ParseState parses a state label: "R", or one of M, I, D followed by a
// decimal column number >= 1 without sign or leading zeros. For every label
// accepted, ParseState(label).String() == label.
func ParseState(label string) (State, error) {
	if label == "R" {
		return R, nil
	}
	if len(label) < 2 {
		return State{}, fmt.Errorf("bad state label %q", label)
	}
	var kind Kind
	switch label[0] {
	case 'M':
		kind = Match
	case 'I':
		kind = Insert
	case 'D':
		kind = Delete
	default:
		return State{}, fmt.Errorf("bad state label %q: kind must be R, M, I or D", label)
	}
	digits := label[1:]
	if digits[0] == '0' {
		return State{}, fmt.Errorf("bad state label %q: column must be >= 1 without leading zeros", label)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return State{}, fmt.Errorf("bad state label %q: column is not a number", label)
		}
	}
	col, err := strconv.Atoi(digits)
	if err != nil {
		return State{}, fmt.Errorf("bad state label %q: %v", label, err)
	}
	return State{Kind: kind, Column: col}, nil
}

// Less orders states canonically: R first, then by column, and M < I < D
// inside a column.
func Less(a, b State) bool {
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	return a.Kind < b.Kind
}

// LessLabel orders labels canonically when both parse, parsed labels before
// unparsable ones, and lexically otherwise.
func LessLabel(a, b string) bool {
	sa, ea := ParseState(a)
	sb, eb := ParseState(b)
	switch {
	case ea == nil && eb == nil:
		return Less(sa, sb)
	case ea == nil:
		return true
	case eb == nil:
		return false
	}
	return a < b
}
