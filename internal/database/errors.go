package database

import "strings"

// IsPostgreSQLUniqueViolation reports whether err comes from a unique index
// or constraint in PostgreSQL.
func IsPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// IsMySQLUniqueViolation reports whether err is MySQL error 1062.
func IsMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "Error 1062")
}
