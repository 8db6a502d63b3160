// Package nullv implements the three-valued-logic kernel: arithmetic,
// comparison, string, and aggregation operators over values that may be
// unknown. Unknown is represented by a Go nil or any value whose dynamic
// type implements Nullable and reports IsNull() true.
package nullv

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sqlforge/sqlforge/sqlerr"
)

// Nullable is implemented by host values that self-report nullness, mirroring
// a database-null wrapper type.
type Nullable interface {
	IsNull() bool
}

var detectors []func(any) bool

// RegisterDetector adds a predicate that classifies a value as unknown. It is
// consulted by IsNull in registration order after the built-in nil and
// Nullable checks. Intended for process-init registration of a host sentinel
// (e.g. a database driver's NULL marker type).
func RegisterDetector(f func(any) bool) {
	detectors = append(detectors, f)
}

// ResetDetectors clears all registered detectors. Exposed for test isolation.
func ResetDetectors() {
	detectors = nil
}

// IsNull reports whether v is considered unknown.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if n, ok := v.(Nullable); ok {
		return n.IsNull()
	}
	for _, f := range detectors {
		if f(v) {
			return true
		}
	}
	return false
}

// NotNull is the negation of IsNull.
func NotNull(v any) bool { return !IsNull(v) }

// Accept reports whether v is considered truthy: not null, and not the zero
// boolean value.
func Accept(v any) bool {
	if IsNull(v) {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// HasNull reports whether any element of s is unknown.
func HasNull(s []any) bool {
	for _, x := range s {
		if IsNull(x) {
			return true
		}
	}
	return false
}

// Any reports whether any element of s is truthy.
func Any(s []any) bool {
	for _, x := range s {
		if Accept(x) {
			return true
		}
	}
	return false
}

// All reports whether every element of s is truthy.
func All(s []any) bool {
	for _, x := range s {
		if !Accept(x) {
			return false
		}
	}
	return true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Neg returns the null-aware negation of n.
func Neg(n any) any {
	if IsNull(n) {
		return nil
	}
	f, ok := asFloat(n)
	if !ok {
		return -0.0
	}
	return -f
}

// Pos returns n unchanged, propagating null.
func Pos(n any) any {
	if IsNull(n) {
		return nil
	}
	return n
}

// Summarize returns the sum of N, or unknown if any element is unknown.
func Summarize(n ...any) any {
	if HasNull(n) {
		return nil
	}
	var sum float64
	for _, x := range n {
		f, _ := asFloat(x)
		sum += f
	}
	return sum
}

// Sub returns n1-n2, null-aware.
func Sub(n1, n2 any) any {
	if IsNull(n1) || IsNull(n2) {
		return nil
	}
	f1, _ := asFloat(n1)
	f2, _ := asFloat(n2)
	return f1 - f2
}

// Multiply returns the product of N, null-aware.
func Multiply(n ...any) any {
	if HasNull(n) {
		return nil
	}
	product := 1.0
	for _, x := range n {
		f, _ := asFloat(x)
		product *= f
	}
	return product
}

// FloorDiv returns floor(n1/n2), null-aware. Division by zero surfaces as a
// host arithmetic error, never masked as unknown.
func FloorDiv(n1, n2 any) (any, error) {
	if IsNull(n1) || IsNull(n2) {
		return nil, nil
	}
	f1, _ := asFloat(n1)
	f2, _ := asFloat(n2)
	if f2 == 0 {
		return nil, errors.New("nullv: floor division by zero")
	}
	return math.Floor(f1 / f2), nil
}

// TrueDiv returns n1/n2, null-aware. Division by zero surfaces as a host
// arithmetic error.
func TrueDiv(n1, n2 any) (any, error) {
	if IsNull(n1) || IsNull(n2) {
		return nil, nil
	}
	f1, _ := asFloat(n1)
	f2, _ := asFloat(n2)
	if f2 == 0 {
		return nil, errors.New("nullv: division by zero")
	}
	return f1 / f2, nil
}

// Pow returns n1**n2, null-aware.
func Pow(n1, n2 any) any {
	if IsNull(n1) || IsNull(n2) {
		return nil
	}
	f1, _ := asFloat(n1)
	f2, _ := asFloat(n2)
	return math.Pow(f1, f2)
}

// Mod returns n1 mod n2, null-aware. Division by zero surfaces as a host
// arithmetic error.
func Mod(n1, n2 any) (any, error) {
	if IsNull(n1) || IsNull(n2) {
		return nil, nil
	}
	f1, _ := asFloat(n1)
	f2, _ := asFloat(n2)
	if f2 == 0 {
		return nil, errors.New("nullv: modulo by zero")
	}
	m := f1 - f2*float64(int64(f1/f2))
	return m, nil
}

// Concat returns the concatenation of s, null-aware.
func Concat(s ...any) any {
	if HasNull(s) {
		return nil
	}
	var b strings.Builder
	for _, x := range s {
		b.WriteString(x.(string))
	}
	return b.String()
}

// Concat2 concatenates s1 and s2, null-aware.
func Concat2(s1, s2 any) any {
	if IsNull(s1) || IsNull(s2) {
		return nil
	}
	return s1.(string) + s2.(string)
}

func equalValue(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return a == b
}

// IsIn reports whether s contains a. Unknown if a is unknown; if a matches a
// non-unknown element, returns true; otherwise unknown if s contains an
// unknown element, else false.
func IsIn(a any, s []any) any {
	if IsNull(a) {
		return nil
	}
	for _, x := range s {
		if !IsNull(x) && equalValue(a, x) {
			return true
		}
	}
	if HasNull(s) {
		return nil
	}
	return false
}

// NotIn is the negated-polarity counterpart of IsIn.
func NotIn(a any, s []any) any {
	if IsNull(a) {
		return nil
	}
	for _, x := range s {
		if !IsNull(x) && equalValue(a, x) {
			return false
		}
	}
	if HasNull(s) {
		return nil
	}
	return true
}

func compare(a, b any) (int, bool) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	as, aok2 := a.(string)
	bs, bok2 := b.(string)
	if aok2 && bok2 {
		return strings.Compare(as, bs), true
	}
	return 0, false
}

// Lt returns a<b, null-aware.
func Lt(a, b any) any {
	if IsNull(a) || IsNull(b) {
		return nil
	}
	c, _ := compare(a, b)
	return c < 0
}

// Le returns a<=b, null-aware.
func Le(a, b any) any {
	if IsNull(a) || IsNull(b) {
		return nil
	}
	c, _ := compare(a, b)
	return c <= 0
}

// Eq returns a==b, null-aware.
func Eq(a, b any) any {
	if IsNull(a) || IsNull(b) {
		return nil
	}
	return equalValue(a, b)
}

// Ne returns a!=b, null-aware.
func Ne(a, b any) any {
	if IsNull(a) || IsNull(b) {
		return nil
	}
	return !equalValue(a, b)
}

// Ge returns a>=b, null-aware.
func Ge(a, b any) any {
	if IsNull(a) || IsNull(b) {
		return nil
	}
	c, _ := compare(a, b)
	return c >= 0
}

// Gt returns a>b, null-aware.
func Gt(a, b any) any {
	if IsNull(a) || IsNull(b) {
		return nil
	}
	c, _ := compare(a, b)
	return c > 0
}

// Between returns lo<=a && a<=hi, null-aware, via And.
func Between(a, lo, hi any) any {
	return And(Ge(a, lo), Le(a, hi))
}

// And implements Kleene three-valued AND: short-circuits on a concrete false,
// otherwise unknown if any operand is unknown, else true.
func And(b ...any) any {
	r := any(true)
	for _, x := range b {
		if IsNull(x) {
			r = nil
		} else if !x.(bool) {
			return false
		}
	}
	return r
}

// Or implements Kleene three-valued OR: short-circuits on a concrete true,
// otherwise unknown if any operand is unknown, else false.
func Or(b ...any) any {
	r := any(false)
	for _, x := range b {
		if IsNull(x) {
			r = nil
		} else if x.(bool) {
			return true
		}
	}
	return r
}

// Not implements null-aware NOT.
func Not(b any) any {
	if IsNull(b) {
		return nil
	}
	return !b.(bool)
}

// UCase returns the uppercase of s, null-aware.
func UCase(s any) any {
	if IsNull(s) {
		return nil
	}
	return strings.ToUpper(s.(string))
}

// LCase returns the lowercase of s, null-aware.
func LCase(s any) any {
	if IsNull(s) {
		return nil
	}
	return strings.ToLower(s.(string))
}

// Replace replaces all occurrences of old with new in s, null-aware.
func Replace(s, old, new any) any {
	if IsNull(s) || IsNull(old) || IsNull(new) {
		return nil
	}
	return strings.ReplaceAll(s.(string), old.(string), new.(string))
}

// LTrim trims leading whitespace from s, null-aware.
func LTrim(s any) any {
	if IsNull(s) {
		return nil
	}
	return strings.TrimLeft(s.(string), " \t\n\r")
}

// RTrim trims trailing whitespace from s, null-aware.
func RTrim(s any) any {
	if IsNull(s) {
		return nil
	}
	return strings.TrimRight(s.(string), " \t\n\r")
}

// Trim trims leading and trailing whitespace from s, null-aware.
func Trim(s any) any {
	if IsNull(s) {
		return nil
	}
	return strings.TrimSpace(s.(string))
}

// Cast applies a named conversion to a, null-aware. Supported names: "int",
// "float", "string", "bool".
func Cast(a any, t string) (any, error) {
	if IsNull(a) {
		return nil, nil
	}
	switch t {
	case "string":
		return toString(a), nil
	case "int":
		if s, ok := a.(string); ok {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "nullv: cannot cast %q to int", s)
			}
			return n, nil
		}
		f, ok := asFloat(a)
		if !ok {
			return nil, errors.Errorf("nullv: cannot cast %T to int", a)
		}
		return int64(f), nil
	case "float":
		f, ok := asFloat(a)
		if !ok {
			return nil, errors.Errorf("nullv: cannot cast %T to float", a)
		}
		return f, nil
	case "bool":
		b, ok := a.(bool)
		if !ok {
			return nil, errors.Errorf("nullv: cannot cast %T to bool", a)
		}
		return b, nil
	default:
		return nil, sqlerr.Withf(sqlerr.Unsupported, t, "unknown cast type %q", t)
	}
}

func toString(a any) string {
	if s, ok := a.(string); ok {
		return s
	}
	return strings.TrimSpace(strings.Trim(strings.ReplaceAll(sprint(a), "\x00", ""), ""))
}

func sprint(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		if f, ok := asFloat(a); ok {
			return trimFloat(f)
		}
		return ""
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return intToStr(int64(f))
	}
	return strings.TrimRight(strings.TrimRight(floatToStr(f), "0"), ".")
}

func intToStr(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func floatToStr(f float64) string {
	whole := int64(f)
	frac := f - float64(whole)
	if frac < 0 {
		frac = -frac
	}
	fracDigits := int64(frac * 1e9)
	return intToStr(whole) + "." + padLeft(intToStr(fracDigits), 9)
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// AggregateSummary sums s, ignoring null elements; returns unknown if every
// element is unknown (or s is empty).
func AggregateSummary(s []any) any {
	var r any
	for _, v := range s {
		if NotNull(v) {
			if IsNull(r) {
				r = v
			} else {
				r = Summarize(r, v)
			}
		}
	}
	return r
}

// AggregateMinimum returns the minimum of s, ignoring null elements.
func AggregateMinimum(s []any) any {
	var r any
	for _, v := range s {
		if NotNull(v) {
			if IsNull(r) || Lt(v, r) == true {
				r = v
			}
		}
	}
	return r
}

// AggregateMaximum returns the maximum of s, ignoring null elements.
func AggregateMaximum(s []any) any {
	var r any
	for _, v := range s {
		if NotNull(v) {
			if IsNull(r) || Gt(v, r) == true {
				r = v
			}
		}
	}
	return r
}

// AggregateCount counts the non-null elements of s.
func AggregateCount(s []any) int {
	n := 0
	for _, v := range s {
		if NotNull(v) {
			n++
		}
	}
	return n
}

// AggregateSummaries applies AggregateSummary element-wise across tuples of
// length size.
func AggregateSummaries(size int, s [][]any) []any {
	r := make([]any, size)
	for _, tuple := range s {
		for i := 0; i < size; i++ {
			if NotNull(tuple[i]) {
				if IsNull(r[i]) {
					r[i] = tuple[i]
				} else {
					r[i] = Summarize(r[i], tuple[i])
				}
			}
		}
	}
	return r
}

// AggregateMinimums applies AggregateMinimum element-wise across tuples of
// length size.
func AggregateMinimums(size int, s [][]any) []any {
	r := make([]any, size)
	for _, tuple := range s {
		for i := 0; i < size; i++ {
			if NotNull(tuple[i]) {
				if IsNull(r[i]) || Lt(tuple[i], r[i]) == true {
					r[i] = tuple[i]
				}
			}
		}
	}
	return r
}

// AggregateMaximums applies AggregateMaximum element-wise across tuples of
// length size.
func AggregateMaximums(size int, s [][]any) []any {
	r := make([]any, size)
	for _, tuple := range s {
		for i := 0; i < size; i++ {
			if NotNull(tuple[i]) {
				if IsNull(r[i]) || Gt(tuple[i], r[i]) == true {
					r[i] = tuple[i]
				}
			}
		}
	}
	return r
}

// AggregateCounts applies AggregateCount element-wise across tuples of
// length size.
func AggregateCounts(size int, s [][]any) []int {
	r := make([]int, size)
	for _, tuple := range s {
		for i := 0; i < size; i++ {
			if NotNull(tuple[i]) {
				r[i]++
			}
		}
	}
	return r
}
