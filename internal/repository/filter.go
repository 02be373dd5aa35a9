package repository

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/iliyamo/timekeeper/internal/database"
	"github.com/iliyamo/timekeeper/internal/validate"
)

// Condition is one typed predicate of a Filter: either Equals or Contains.
type Condition interface {
	predicate(d database.Dialect, column string) (string, any)
}

// Equals matches an integer column exactly.
type Equals int64

// Contains matches a text column holding the operand as a case-sensitive
// substring.
type Contains string

func (e Equals) predicate(_ database.Dialect, column string) (string, any) {
	return column + " = ?", int64(e)
}

func (c Contains) predicate(d database.Dialect, column string) (string, any) {
	return d.Contains(column), string(c)
}

// Filter is a conjunction of conditions keyed by field name.  A nil or
// empty Filter matches everything.
type Filter map[string]Condition

// ParseFilter turns a loosely typed field → value mapping into a Filter.
// Fields named "id" or ending in "Id" become Equals and their values must
// be whole numbers; every other field becomes Contains.
func ParseFilter(raw map[string]any) (Filter, error) {
	f := make(Filter, len(raw))
	for field, v := range raw {
		if isIDField(field) {
			n, err := toInt(field, v)
			if err != nil {
				return nil, err
			}
			f[field] = Equals(n)
			continue
		}
		switch t := v.(type) {
		case string:
			f[field] = Contains(t)
		default:
			f[field] = Contains(fmt.Sprint(t))
		}
	}
	return f, nil
}

func isIDField(field string) bool {
	return field == "id" || strings.HasSuffix(field, "Id")
}

func toInt(field string, v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		if t != math.Trunc(t) || t < -(1<<63) || t >= 1<<63 {
			return 0, &validate.Error{Field: field, Value: fmt.Sprint(v), Reason: "must be a whole number in int64 range"}
		}
		return int64(t), nil
	case string:
		return validate.Integer(field, t)
	}
	return validate.Integer(field, fmt.Sprint(v))
}

var venueColumns = map[string]string{
	"id":      "id",
	"name":    "name",
	"address": "address",
}

var eventColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"venueId":     "venue",
	"dateTimeId":  "date_time",
}

// where renders f against the allowed columns.  Field names are never
// interpolated; an unknown field is a validation error.  Operands are
// always bound as arguments.
func (f Filter) where(d database.Dialect, columns map[string]string) (string, []any, error) {
	if len(f) == 0 {
		return "1=1", nil, nil
	}
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	clauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, field := range fields {
		column, ok := columns[field]
		if !ok {
			return "", nil, &validate.Error{Field: "filter", Value: field, Reason: "unknown field"}
		}
		cond := f[field]
		if cond == nil {
			return "", nil, &validate.Error{Field: "filter", Value: field, Reason: "missing condition"}
		}
		clause, arg := cond.predicate(d, column)
		clauses = append(clauses, clause)
		args = append(args, arg)
	}
	return strings.Join(clauses, " AND "), args, nil
}
