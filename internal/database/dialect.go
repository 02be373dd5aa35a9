package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// Dialect captures the SQL that differs between the supported engines.
// Both engines accept "?" placeholders and REPLACE INTO, so only the
// pieces below vary.
type Dialect struct {
	Name         string
	Driver       string
	InsertIgnore string
	schema       []string
	contains     string
	unique       func(error) bool
}

// Contains returns a case-sensitive "column contains ?" predicate.
func (d Dialect) Contains(column string) string {
	return fmt.Sprintf(d.contains, column)
}

// IsUniqueViolation reports whether err was raised by a unique index.
func (d Dialect) IsUniqueViolation(err error) bool {
	if err == nil || d.unique == nil {
		return false
	}
	return d.unique(err)
}

// SQLite is the default single-file backend.
var SQLite = Dialect{
	Name:         "sqlite3",
	Driver:       "sqlite3",
	InsertIgnore: "INSERT OR IGNORE",
	schema:       sqliteSchema,
	contains:     "instr(%s, ?) > 0",
	unique: func(err error) bool {
		var se sqlite3.Error
		if errors.As(err, &se) {
			return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
				se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
		}
		return false
	},
}

// MySQL is the server backend.
var MySQL = Dialect{
	Name:         "mysql",
	Driver:       "mysql",
	InsertIgnore: "INSERT IGNORE",
	schema:       mysqlSchema,
	contains:     "INSTR(CAST(%s AS BINARY), ?) > 0",
	unique: func(err error) bool {
		var me *mysql.MySQLError
		return errors.As(err, &me) && me.Number == 1062
	},
}

// DialectFor resolves a driver name from configuration.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql":
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}
