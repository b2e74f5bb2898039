// core/pattern/tsv.go
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"figmop-core/profile"
)

// Row kinds of the TSV format.
const (
	rowSetting    = "setting"
	rowEmission   = profile.EmissionTable
	rowTransition = profile.TransitionTable
)

// ParseTSV reads the row format, one weight per line:
//
//	setting     min_matches  4
//	emission    M1           8   1.0
//	transition  R            M1  0.05
//
// Fields are tab-separated; blank lines and '#' comments are ignored. A
// two-field emission or transition line declares an empty row. Fields are
// taken verbatim apart from the escapes written by WriteTSV (\\, \t, \n,
// \r), so symbols may carry spaces.
func ParseTSV(r io.Reader, name string) (*File, error) {
	f := &File{Name: name, Emissions: profile.Table{}, Transitions: profile.Table{}}
	seen := map[string]bool{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || trimmed[0] == '#' {
			continue
		}
		fs := strings.Split(line, "\t")
		for i := range fs {
			fs[i] = unescapeField(fs[i])
		}
		fs[0] = strings.TrimSpace(fs[0])
		switch fs[0] {
		case rowSetting:
			if len(fs) != 3 {
				return nil, fmt.Errorf("%s:%d: bad field count", name, ln)
			}
			if seen[fs[1]] {
				return nil, fmt.Errorf("%s:%d: %s set twice", name, ln, fs[1])
			}
			seen[fs[1]] = true
			if err := setSetting(&f.Settings, fs[1], fs[2]); err != nil {
				return nil, fmt.Errorf("%s:%d: %v", name, ln, err)
			}
		case rowEmission, rowTransition:
			if len(fs) != 2 && len(fs) != 4 {
				return nil, fmt.Errorf("%s:%d: bad field count", name, ln)
			}
			tbl := f.Transitions
			if fs[0] == rowEmission {
				tbl = f.Emissions
			}
			row := tbl[fs[1]]
			if row == nil {
				row = map[string]float64{}
				tbl[fs[1]] = row
			}
			if len(fs) == 2 {
				continue
			}
			if _, dup := row[fs[2]]; dup {
				return nil, fmt.Errorf("%s:%d: duplicate %s weight %s[%s]", name, ln, fs[0], fs[1], fs[2])
			}
			w, err := strconv.ParseFloat(strings.TrimSpace(fs[3]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, ln,
					&profile.InvalidWeightError{Table: fs[0], State: fs[1], Key: fs[2], Raw: fs[3]})
			}
			row[fs[2]] = w
		default:
			return nil, fmt.Errorf("%s:%d: unknown row kind %q", name, ln, fs[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := f.finish(); err != nil {
		return nil, err
	}
	return f, nil
}

func setSetting(s *Settings, key, val string) error {
	switch key {
	case KeyMinMatches, KeyMaxGenomeRegion:
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("bad %s: %v", key, err)
		}
		if key == KeyMinMatches {
			s.MinMatches = n
		} else {
			s.MaxGenomeRegion = n
		}
	case KeyMemeFile:
		s.MemeFile = val
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// unescapeField reverses escapeField. Unknown escapes keep the escaped byte.
func unescapeField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
