package dto

import (
	"fmt"
	"maps"
	"strings"
)

type FilterOperator string

const (
	FilterOperatorEq        FilterOperator = "eq"
	FilterOperatorNotEq     FilterOperator = "not_eq"
	FilterOperatorLessEq    FilterOperator = "less_eq"
	FilterOperatorGreaterEq FilterOperator = "greater_eq"
	FilterIsNull            FilterOperator = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[FilterOperator]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one condition on a column. ArgName defaults to Field and must be
// unique inside a FilterGroup.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator FilterOperator
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

// GetWhereClause renders the condition with a named placeholder. Unknown
// operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	if f.Operator == FilterIsNull {
		return f.column() + " IS NULL", args
	}

	sign, ok := comparisons[f.Operator]
	if !ok {
		return "", args
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	args[argName] = f.Value

	return fmt.Sprintf("%s %s :%s", f.column(), sign, argName), args
}

// FilterGroup joins Filter and nested FilterGroup values with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch node := item.(type) {
		case Filter:
			where, arg = node.GetWhereClause()
		case FilterGroup:
			where, arg = node.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	return "(" + strings.Join(parts, " "+f.Operator+" ") + ")", args
}
