package pgsql

import (
	"fmt"
	"strings"
)

// setClause accumulates "column = $n" assignments for an UPDATE. Column names are always
// literals chosen by the repository; only values come from the caller.
type setClause struct {
	parts []string
	args  []any
}

func (s *setClause) set(column string, value any) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// arg appends a value for use outside the SET list and returns its placeholder.
func (s *setClause) arg(value any) string {
	s.args = append(s.args, value)
	return fmt.Sprintf("$%d", len(s.args))
}

func (s *setClause) empty() bool {
	return len(s.parts) == 0
}

// String renders the assignments, always bumping updated_at.
func (s *setClause) String() string {
	parts := append(append([]string{}, s.parts...), "updated_at = NOW()")
	return strings.Join(parts, ", ")
}

// whereBuilder accumulates AND-combined conditions with positional args.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition. format holds a single %s that receives the placeholder.
func (w *whereBuilder) add(format string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf(format, fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next returns the placeholder the next appended arg will get.
func (w *whereBuilder) next() int {
	return len(w.args) + 1
}
