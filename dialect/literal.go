package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// litRepr renders v as a SQL literal: nil becomes NULL, strings are quoted
// with doubled embedded quotes, bools become TRUE/FALSE keywords, and
// everything else falls back to its default formatting.
func (qb *QueryBuilder) litRepr(v any) string {
	if v == nil {
		return qb.root.keyword("null")
	}
	if reprs := qb.root.Dialect.ConstReprs; reprs != nil {
		if f, ok := reprs[fmt.Sprintf("%T", v)]; ok {
			return f(v)
		}
	}
	switch x := v.(type) {
	case bool:
		if x {
			return qb.root.keyword("true")
		}
		return qb.root.keyword("false")
	case string:
		return sqlString(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (qb *QueryBuilder) typeRepr(t string) string {
	if reprs := qb.root.Dialect.TypeReprs; reprs != nil {
		if f, ok := reprs[t]; ok {
			return f(t)
		}
	}
	return t
}
