package data

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind tags the value type a column holds.
type Kind uint8

const (
	Numeric Kind = iota
	Categorical
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Boolean:
		return "boolean"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Column is a named, typed sequence of cells.
// Numeric and Boolean cells live in Floats, Categorical cells in Strings.
// Missing[i] marks cell i as absent; the value slot is then meaningless.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
	Missing []bool
}

// NewNumeric creates a numeric column with no missing cells.
func NewNumeric(name string, vals []float64) *Column {
	return &Column{Name: name, Kind: Numeric, Floats: vals, Missing: make([]bool, len(vals))}
}

// NewCategorical creates a categorical column with no missing cells.
func NewCategorical(name string, vals []string) *Column {
	return &Column{Name: name, Kind: Categorical, Strings: vals, Missing: make([]bool, len(vals))}
}

// NewBoolean creates a boolean column stored as 0/1.
func NewBoolean(name string, vals []bool) *Column {
	f := make([]float64, len(vals))
	for i, v := range vals {
		if v {
			f[i] = 1
		}
	}
	return &Column{Name: name, Kind: Boolean, Floats: f, Missing: make([]bool, len(vals))}
}

// Len returns the number of cells.
func (c *Column) Len() int {
	if c.Kind == Categorical {
		return len(c.Strings)
	}
	return len(c.Floats)
}

// IsMissing reports whether cell i is absent.
func (c *Column) IsMissing(i int) bool { return c.Missing != nil && c.Missing[i] }

// MissingCount returns the number of absent cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// PresentFloats returns the non-missing values of a numeric or boolean column.
func (c *Column) PresentFloats() []float64 {
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.IsMissing(i) {
			out = append(out, v)
		}
	}
	return out
}

// PresentStrings returns the non-missing values of a categorical column in row order.
func (c *Column) PresentStrings() []string {
	out := make([]string, 0, len(c.Strings))
	for i, v := range c.Strings {
		if !c.IsMissing(i) {
			out = append(out, v)
		}
	}
	return out
}

// Format renders cell i the way it is written to CSV.
func (c *Column) Format(i int) string {
	if c.IsMissing(i) {
		return ""
	}
	switch c.Kind {
	case Categorical:
		return c.Strings[i]
	case Boolean:
		if c.Floats[i] != 0 {
			return "True"
		}
		return "False"
	default:
		return strconv.FormatFloat(c.Floats[i], 'f', -1, 64)
	}
}

// Table is an ordered set of uniquely named, equal-length columns.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// NewTable builds a table; all columns must share one length and have distinct names.
func NewTable(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	if len(cols) > 0 {
		t.rows = cols[0].Len()
	}
	for _, c := range cols {
		if err := t.Add(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Rows returns N, the shared column length.
func (t *Table) Rows() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Columns returns the columns in order. The slice must not be modified.
func (t *Table) Columns() []*Column { return t.cols }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether a column named name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Add appends c. It fails on a duplicate name or a length mismatch.
func (t *Table) Add(c *Column) error {
	if _, ok := t.index[c.Name]; ok {
		return errors.Errorf("column %q already exists", c.Name)
	}
	if err := t.checkLen(c); err != nil {
		return err
	}
	if len(t.cols) == 0 {
		t.rows = c.Len()
	}
	t.index[c.Name] = len(t.cols)
	t.cols = append(t.cols, c)
	return nil
}

// Set replaces the column with the same name in place, or appends c.
func (t *Table) Set(c *Column) error {
	i, ok := t.index[c.Name]
	if !ok {
		return t.Add(c)
	}
	if err := t.checkLen(c); err != nil {
		return err
	}
	t.cols[i] = c
	return nil
}

// Drop removes the named column and reports whether it existed.
func (t *Table) Drop(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	t.cols = append(t.cols[:i], t.cols[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.cols); j++ {
		t.index[t.cols[j].Name] = j
	}
	return true
}

func (t *Table) checkLen(c *Column) error {
	if len(c.Missing) != c.Len() {
		return errors.Errorf("column %q: missing mask has %d entries for %d cells", c.Name, len(c.Missing), c.Len())
	}
	if len(t.cols) > 0 && c.Len() != t.rows {
		return errors.Errorf("column %q has %d rows, table has %d", c.Name, c.Len(), t.rows)
	}
	return nil
}
