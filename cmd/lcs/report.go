package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lcskit/lcs"
	"github.com/katalvlaran/lcskit/table"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported --%s=%q; want %s, %s or %s", globalFormat, f, formatText, formatJSON, formatYAML)
	}
}

// report is the result of the analyze command for one prefix pair.
type report struct {
	X        string     `yaml:"x"`
	Y        string     `yaml:"y"`
	M        int        `yaml:"m"`
	N        int        `yaml:"n"`
	Length   int        `yaml:"length"`
	LCS      string     `yaml:"lcs"`
	Matching [][]int    `yaml:"matching"`
	Count    string     `yaml:"count,omitempty"`
	Note     string     `yaml:"note,omitempty"`
	Lengths  [][]int    `yaml:"llcs"`
	Counts   [][]string `yaml:"nlcs,omitempty"`
	Problems []string   `yaml:"problems,omitempty"`

	lengthTable string
	countTable  string
}

// stringView renders the cells of a View as strings.
type stringView[V any] struct {
	v      table.View[V]
	render func(V) string
}

func (s stringView[V]) Rows() int { return s.v.Rows() }
func (s stringView[V]) Cols() int { return s.v.Cols() }

func (s stringView[V]) At(i, j int) (string, error) {
	val, err := s.v.At(i, j)
	if err != nil {
		return "", err
	}
	return s.render(val), nil
}

// countCells returns the count table as strings, or nil under CountNone.
func countCells[T comparable](a *lcs.Analysis[T]) table.View[string] {
	if v, err := a.Counts(); err == nil {
		return stringView[uint64]{v: v, render: func(c uint64) string {
			if c == lcs.CountOverflow {
				return "ovf"
			}
			return strconv.FormatUint(c, 10)
		}}
	}
	if v, err := a.BigCounts(); err == nil {
		return stringView[*big.Int]{v: v, render: func(c *big.Int) string { return c.String() }}
	}
	return nil
}

// window copies the (m+1)×(n+1) corner of v, row 0 first.
func window[V any](v table.View[V], m, n int) ([][]V, error) {
	out := make([][]V, m+1)
	for i := 0; i <= m; i++ {
		out[i] = make([]V, n+1)
		for j := 0; j <= n; j++ {
			val, err := v.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = val
		}
	}
	return out, nil
}

// buildReport collects every statistic for the prefix pair (m, n) and runs
// the self-checks: length agreement, common-subsequence check, and matching
// validation.
func buildReport(a *lcs.Analysis[rune], m, n int) (*report, error) {
	length, err := a.LengthAt(m, n)
	if err != nil {
		return nil, err
	}
	s, err := a.SubsequenceAt(m, n)
	if err != nil {
		return nil, err
	}
	mt, err := a.MaxMatchingAt(m, n)
	if err != nil {
		return nil, err
	}
	x, y := a.X(), a.Y()

	r := &report{
		X:        string(x),
		Y:        string(y),
		M:        m,
		N:        n,
		Length:   length,
		LCS:      string(s),
		Matching: mt.Rows(),
	}
	if r.Lengths, err = window(a.Lengths(), m, n); err != nil {
		return nil, err
	}
	if r.lengthTable, err = table.Format(a.Lengths(), m, n); err != nil {
		return nil, err
	}

	if cells := countCells(a); cells != nil {
		if r.Counts, err = window(cells, m, n); err != nil {
			return nil, err
		}
		if r.countTable, err = table.Format(cells, m, n); err != nil {
			return nil, err
		}
	}
	switch cnt, err := a.NumMaxMatchingsBigAt(m, n); {
	case err == nil:
		r.Count = cnt.String()
	case errors.Is(err, lcs.ErrCountOverflow):
		r.Note = "number of maximal matchings overflows uint64; rerun with --counting big"
	case errors.Is(err, lcs.ErrCountsDisabled):
	default:
		return nil, err
	}

	if len(s) != length {
		r.Problems = append(r.Problems,
			fmt.Sprintf("Length %d is inconsistent with LLCS table, which says %d", len(s), length))
	}
	if !lcs.IsCommonSubsequence(s, x[:m], y[:n]) {
		r.Problems = append(r.Problems, "Not a common subsequence")
	}
	if err := a.CheckMaxMatchingAt(mt, m, n); err != nil {
		r.Problems = append(r.Problems, fmt.Sprintf("That is NOT a valid maximal matching: %v", err))
	}
	return r, nil
}

func writeReport(w io.Writer, format string, r *report) error {
	switch format {
	case formatJSON:
		_, err := w.Write(append(reportJSON(r), '\n'))
		return err
	case formatYAML:
		return writeYAML(w, r)
	default:
		return writeReportText(w, r)
	}
}

func writeReportText(w io.Writer, r *report) error {
	ew := &errWriter{w: w}
	ew.printf("\nLLCS table for %s and %s:\n\n%s\n", r.X, r.Y, r.lengthTable)
	ew.printf("Length of any LCS is %d\n", r.Length)
	ew.printf("A longest common subsequence is %s\n", r.LCS)
	for _, p := range r.Problems {
		ew.printf("** Error: %s **\n", p)
	}
	ew.printf("A maximal matching is:\n%s", table.FormatMatching(r.Matching[0], r.Matching[1]))
	if r.countTable != "" {
		ew.printf("\nNLCS table for %s and %s:\n\n%s\n", r.X, r.Y, r.countTable)
	}
	if r.Count != "" {
		ew.printf("Number of maximal matchings is %s\n", r.Count)
	}
	if r.Note != "" {
		ew.printf("Note: %s\n", r.Note)
	}
	return ew.err
}

// reportJSON builds the JSON document with a fastjson arena. Counts are
// emitted as JSON numbers of arbitrary size.
func reportJSON(r *report) []byte {
	var a fastjson.Arena
	o := a.NewObject()
	o.Set("x", a.NewString(r.X))
	o.Set("y", a.NewString(r.Y))
	o.Set("m", a.NewNumberInt(r.M))
	o.Set("n", a.NewNumberInt(r.N))
	o.Set("length", a.NewNumberInt(r.Length))
	o.Set("lcs", a.NewString(r.LCS))
	o.Set("matching", intRowsJSON(&a, r.Matching))
	if r.Count != "" {
		o.Set("count", a.NewNumberString(r.Count))
	} else {
		o.Set("count", a.NewNull())
	}
	if r.Note != "" {
		o.Set("note", a.NewString(r.Note))
	}
	o.Set("llcs", intRowsJSON(&a, r.Lengths))
	if r.Counts != nil {
		rows := a.NewArray()
		for i, row := range r.Counts {
			cells := a.NewArray()
			for j, c := range row {
				if c == "ovf" {
					cells.SetArrayItem(j, a.NewNull())
					continue
				}
				cells.SetArrayItem(j, a.NewNumberString(c))
			}
			rows.SetArrayItem(i, cells)
		}
		o.Set("nlcs", rows)
	}
	problems := a.NewArray()
	for i, p := range r.Problems {
		problems.SetArrayItem(i, a.NewString(p))
	}
	o.Set("problems", problems)
	return o.MarshalTo(nil)
}

func intRowsJSON(a *fastjson.Arena, rows [][]int) *fastjson.Value {
	arr := a.NewArray()
	for i, row := range rows {
		cells := a.NewArray()
		for j, v := range row {
			cells.SetArrayItem(j, a.NewNumberInt(v))
		}
		arr.SetArrayItem(i, cells)
	}
	return arr
}

// verdict is the result of the validate command.
type verdict struct {
	X        string  `yaml:"x"`
	Y        string  `yaml:"y"`
	M        int     `yaml:"m"`
	N        int     `yaml:"n"`
	Matching [][]int `yaml:"matching"`
	Valid    bool    `yaml:"valid"`
	Maximal  bool    `yaml:"maximal"`
	Problems string  `yaml:"problems,omitempty"`
}

func buildVerdict(a *lcs.Analysis[rune], mt lcs.Matching, m, n int) *verdict {
	v := &verdict{
		X:        string(a.X()),
		Y:        string(a.Y()),
		M:        m,
		N:        n,
		Matching: mt.Rows(),
		Valid:    a.IsValidMatchingAt(mt, m, n),
		Maximal:  a.IsValidMaxMatchingAt(mt, m, n),
	}
	if err := a.CheckMaxMatchingAt(mt, m, n); err != nil {
		v.Problems = err.Error()
	}
	return v
}

func writeVerdict(w io.Writer, format string, v *verdict) error {
	switch format {
	case formatJSON:
		var a fastjson.Arena
		o := a.NewObject()
		o.Set("x", a.NewString(v.X))
		o.Set("y", a.NewString(v.Y))
		o.Set("m", a.NewNumberInt(v.M))
		o.Set("n", a.NewNumberInt(v.N))
		o.Set("matching", intRowsJSON(&a, v.Matching))
		o.Set("valid", jsonBool(&a, v.Valid))
		o.Set("maximal", jsonBool(&a, v.Maximal))
		if v.Problems != "" {
			o.Set("problems", a.NewString(v.Problems))
		}
		_, err := w.Write(append(o.MarshalTo(nil), '\n'))
		return err
	case formatYAML:
		return writeYAML(w, v)
	default:
		ew := &errWriter{w: w}
		ew.printf("%s", table.FormatMatching(v.Matching[0], v.Matching[1]))
		ew.printf("valid: %v\nmaximal: %v\n", v.Valid, v.Maximal)
		if v.Problems != "" {
			ew.printf("problems: %s\n", v.Problems)
		}
		return ew.err
	}
}

func jsonBool(a *fastjson.Arena, b bool) *fastjson.Value {
	if b {
		return a.NewTrue()
	}
	return a.NewFalse()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot encode yaml: %w", err)
	}
	return enc.Close()
}

// formatLattice renders the raw lattice-path table of x and y.
func formatLattice(x, y string) (string, error) {
	p := lcs.LatticePaths([]rune(x), []rune(y))
	return table.FormatAll[*big.Int](p)
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
