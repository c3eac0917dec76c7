package mysql

import "database/sql"

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
