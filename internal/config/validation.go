package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// identifierPattern restricts table and column names to plain identifiers.
var identifierPattern = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if len(c.Jobs) == 0 {
		errors = append(errors, ValidationError{
			Field:   "jobs",
			Message: "at least one job must be defined",
		})
	}

	usesMySQL := false
	for _, name := range c.ListJobs() {
		job := c.Jobs[name]
		if job.Input.EffectiveFormat() == FormatMySQL {
			usesMySQL = true
		}
		errors = append(errors, c.validateJob(name, &job)...)
	}

	if usesMySQL {
		errors = append(errors, c.validateDatabase("source", &c.Source)...)
	}

	errors = append(errors, validateMining("mining", &c.Mining)...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateDatabase(prefix string, db *DatabaseConfig) ValidationErrors {
	var errors ValidationErrors

	if db.Host == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".host",
			Message: "host is required when a job reads from mysql",
		})
	}

	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".port",
			Message: "port must be between 1 and 65535",
		})
	}

	if db.User == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".user",
			Message: "user is required",
		})
	}

	if db.Database == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateJob(name string, job *JobConfig) ValidationErrors {
	var errors ValidationErrors
	prefix := fmt.Sprintf("jobs.%s", name)

	switch job.Input.EffectiveFormat() {
	case FormatFile:
		if job.Input.Transactions == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".input.transactions",
				Message: "transactions file is required for file input",
			})
		}
		if job.Input.Neighbours == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".input.neighbours",
				Message: "neighbours file is required for file input",
			})
		}
	case FormatMySQL:
		errors = append(errors, validateTransactionTable(prefix+".input.transactions_table", &job.Input.TransactionsTable)...)
		errors = append(errors, validateNeighbourTable(prefix+".input.neighbours_table", &job.Input.NeighboursTable)...)
	default:
		errors = append(errors, ValidationError{
			Field:   prefix + ".input.format",
			Message: "format must be 'file' or 'mysql'",
		})
	}

	if job.Output.Top < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".output.top",
			Message: "top cannot be negative",
		})
	}

	if job.Mining != nil {
		merged := job.GetJobMining(c.Mining)
		errors = append(errors, validateMining(prefix+".mining", &merged)...)
	}

	return errors
}

func validateTransactionTable(prefix string, t *TransactionTableConfig) ValidationErrors {
	var errors ValidationErrors

	required := map[string]string{
		"table":              t.Table,
		"transaction_column": t.TransactionColumn,
		"item_column":        t.ItemColumn,
		"probability_column": t.ProbabilityColumn,
	}
	for _, field := range []string{"table", "transaction_column", "item_column", "probability_column"} {
		errors = append(errors, validateIdentifier(prefix+"."+field, required[field], true)...)
	}
	errors = append(errors, validateIdentifier(prefix+".position_column", t.PositionColumn, false)...)

	return errors
}

func validateNeighbourTable(prefix string, t *NeighbourTableConfig) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, validateIdentifier(prefix+".table", t.Table, true)...)
	errors = append(errors, validateIdentifier(prefix+".item_column", t.ItemColumn, true)...)
	errors = append(errors, validateIdentifier(prefix+".neighbour_column", t.NeighbourColumn, true)...)

	return errors
}

func validateIdentifier(field, value string, required bool) ValidationErrors {
	if value == "" {
		if !required {
			return nil
		}
		return ValidationErrors{{Field: field, Message: "is required for mysql input"}}
	}
	if !identifierPattern.MatchString(value) {
		return ValidationErrors{{Field: field, Message: "must contain only alphanumeric characters and underscores"}}
	}
	return nil
}

func validateMining(prefix string, m *MiningConfig) ValidationErrors {
	var errors ValidationErrors

	if m.MinSup <= 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".min_sup",
			Message: "min_sup must be positive",
		})
	}

	switch m.MinSupMode {
	case MinSupCount, "":
	case MinSupFraction:
		if m.MinSup > 1 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".min_sup",
				Message: "min_sup must be in (0, 1] when min_sup_mode is 'fraction'",
			})
		}
	default:
		errors = append(errors, ValidationError{
			Field:   prefix + ".min_sup_mode",
			Message: "min_sup_mode must be 'count' or 'fraction'",
		})
	}

	if m.MaxDepth < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_depth",
			Message: "max_depth cannot be negative",
		})
	}

	validVerification := map[string]bool{"index": true, "scan": true, "": true}
	if !validVerification[m.Verification] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".verification",
			Message: "verification must be 'index' or 'scan'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
