package persistence

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MySQL/TiDB error numbers
const (
	mysqlErrDuplicateEntry   = 1062
	mysqlErrNoReferencedRow  = 1452
	mysqlErrNoReferencedRow2 = 1216
)

// constraintKind classifies a driver error
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
)

// classifyConstraint inspects driver-specific errors for constraint violations.
func classifyConstraint(err error) constraintKind {
	if err == nil {
		return constraintNone
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDuplicateEntry:
			return constraintUnique
		case mysqlErrNoReferencedRow, mysqlErrNoReferencedRow2:
			return constraintForeignKey
		}
		return constraintNone
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return constraintUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return constraintForeignKey
		}
	}
	return constraintNone
}

// IsUniqueViolation reports whether err is a uniqueness constraint violation
func IsUniqueViolation(err error) bool {
	return classifyConstraint(err) == constraintUnique
}

// IsForeignKeyViolation reports whether err is a foreign key violation
func IsForeignKeyViolation(err error) bool {
	return classifyConstraint(err) == constraintForeignKey
}
