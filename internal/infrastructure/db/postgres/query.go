package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates optional filter conditions with positional
// placeholders. expr is a fmt verb string whose %d receives the argument
// position, e.g. "status = $%d".
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) add(expr string, value any) {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// like adds a partial case-insensitive match.
func (b *whereBuilder) like(column, value string) {
	b.add(column+` ILIKE '%%' || $%d || '%%'`, value)
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// page renders LIMIT/OFFSET for a 1-based page.
func page(pageNum, limit int) string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", limit, (pageNum-1)*limit)
}

// prefixList qualifies a comma-separated column list with a table alias.
func prefixList(alias, columns string) string {
	parts := strings.Split(columns, ",")
	out := make([]string, 0, len(parts))
	for _, c := range parts {
		out = append(out, alias+"."+strings.TrimSpace(c))
	}
	return strings.Join(out, ", ")
}

// prefixColumns qualifies a comma-separated column list with a table alias
// and aliases each column into a struct namespace, so joined rows scan into
// nested structs: `t.id AS "ns.id", t.name AS "ns.name", ...`.
func prefixColumns(alias, columns, namespace string) string {
	parts := strings.Split(columns, ",")
	out := make([]string, 0, len(parts))
	for _, c := range parts {
		c = strings.TrimSpace(c)
		out = append(out, fmt.Sprintf(`%s.%s AS "%s.%s"`, alias, c, namespace, c))
	}
	return strings.Join(out, ", ")
}
