// Package sqlutil builds the read queries used by the MySQL input loaders.
// Table and column names come from configuration, so every identifier is
// validated before it is quoted into a statement.
package sqlutil

import (
	"fmt"
	"regexp"
	"strings"
)

// QuoteIdentifier wraps a MySQL identifier in backticks, doubling any
// backtick inside it.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier reports whether name contains only ASCII letters,
// digits and underscores.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// QuoteIdentifierSafe validates name and then quotes it.
func QuoteIdentifierSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(name), nil
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}

// quoteAll validates and quotes every name, stopping at the first invalid one.
func quoteAll(names []string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		q, err := QuoteIdentifierSafe(name)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// BuildSelect returns "SELECT <columns> FROM <table> [ORDER BY <orderBy>]"
// with every identifier validated and quoted.
func BuildSelect(table string, columns, orderBy []string) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("no columns selected from %s", table)
	}

	qt, err := QuoteIdentifierSafe(table)
	if err != nil {
		return "", err
	}
	qc, err := quoteAll(columns)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(qc, ", "), qt)

	if len(orderBy) > 0 {
		qo, err := quoteAll(orderBy)
		if err != nil {
			return "", err
		}
		query += " ORDER BY " + strings.Join(qo, ", ")
	}

	return query, nil
}
