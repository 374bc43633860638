package repositories

import "strings"

// OrderClause translates a caller-supplied ordering key into a SQL ORDER
// BY expression. Keys follow the "-field" convention for descending
// order ("name", "-created_at"). Only keys present in the entity's
// allow-list map reach SQL; anything else is rejected so arbitrary input
// can never be interpolated into the query.
func OrderClause(key string, columns map[string]string) (string, bool) {
	if key == "" {
		return "", true
	}

	desc := strings.HasPrefix(key, "-")
	field := strings.TrimPrefix(key, "-")

	col, ok := columns[field]
	if !ok {
		return "", false
	}
	if desc {
		return col + " DESC", true
	}
	return col + " ASC", true
}
