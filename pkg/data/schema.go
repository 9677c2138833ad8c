package data

import "strings"

// Schema describes the structure of a table at one point in time.
type Schema struct {
	Names []string
	Kinds []Kind
}

// Schema snapshots the current column names and kinds.
func (t *Table) Schema() Schema {
	s := Schema{Names: make([]string, len(t.cols)), Kinds: make([]Kind, len(t.cols))}
	for i, c := range t.cols {
		s.Names[i] = c.Name
		s.Kinds[i] = c.Kind
	}
	return s
}

// Count returns how many columns have kind k.
func (s Schema) Count(k Kind) int {
	n := 0
	for _, kk := range s.Kinds {
		if kk == k {
			n++
		}
	}
	return n
}

// Diff lists the column names added and removed going from s to next.
func (s Schema) Diff(next Schema) (added, removed []string) {
	before := make(map[string]struct{}, len(s.Names))
	for _, n := range s.Names {
		before[n] = struct{}{}
	}
	after := make(map[string]struct{}, len(next.Names))
	for _, n := range next.Names {
		after[n] = struct{}{}
		if _, ok := before[n]; !ok {
			added = append(added, n)
		}
	}
	for _, n := range s.Names {
		if _, ok := after[n]; !ok {
			removed = append(removed, n)
		}
	}
	return added, removed
}

func (s Schema) String() string {
	var b strings.Builder
	for i, n := range s.Names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte(':')
		b.WriteString(s.Kinds[i].String())
	}
	return b.String()
}
