package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// expectAffected maps a zero-row write to sql.ErrNoRows so services can report NotFound.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE substring pattern with
// wildcards in the term matched literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// ilikeAny matches placeholder $idx against each column, honouring containsPattern escapes.
func ilikeAny(idx int, columns ...string) string {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, column, idx))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
