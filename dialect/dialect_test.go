package dialect

import (
	"strings"
	"testing"

	. "github.com/sqlforge/sqlforge/algebra"
)

func compactOf(t *testing.T, tbl Table) string {
	t.Helper()
	out, err := EmitCompact(tbl, Default())
	if err != nil {
		t.Fatalf("EmitCompact error: %v", err)
	}
	return out
}

func TestEmitCompact(t *testing.T) {
	tests := []struct {
		name     string
		build    func() Table
		expected string
	}{
		{
			name: "projection chain",
			build: func() Table {
				return From("TABLE").
					Include("A", "B", "C").
					Where(Gt(Ident("PRICE"), Const(100))).
					Define(Bind("PRICE", Times(Ident("COST"), Const(3)))).
					Where(Lt(Ident("PRICE"), Const(1000))).Table
			},
			expected: "SELECT A, B, C, (COST * 3) AS PRICE FROM TABLE WHERE (PRICE > 100) AND ((COST * 3) < 1000)",
		},
		{
			name: "rename and aliasing",
			build: func() Table {
				return From("TABLE").
					Include("ITEM_ID", "NAME", "PRICE", "COST").
					Where(Gt(Ident("PRICE"), Const(100))).
					Rename(map[string]string{"PRICE": "Cost", "COST": "Price"}).
					Define(Bind("Price", Times(Ident("Cost"), Const(3)))).
					Where(Lt(Ident("Price"), Const(1000))).Table
			},
			expected: "SELECT ITEM_ID, NAME, PRICE AS Cost, (PRICE * 3) AS Price FROM TABLE WHERE (PRICE > 100) AND ((PRICE * 3) < 1000)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compactOf(t, tt.build())
			if got != tt.expected {
				t.Errorf("got  %s\nwant %s", got, tt.expected)
			}
		})
	}
}

func TestEmitCompactArithmeticAssociativity(t *testing.T) {
	// A + B + 1 + 2 renders without parentheses; a redundant explicit
	// Parentheses node around a chain member still forces its own.
	plain := Plus(Ident("A"), Ident("B"), Const(1), Const(2))
	parenInner := Plus(Ident("A"), &Parentheses{E: Plus(Ident("B"), Const(1))}, Const(2))

	tbl := func(e Expr) Table {
		return From("TABLE").Define(Bind("X", e)).Include("X").Table
	}

	got := compactOf(t, tbl(plain))
	want := "SELECT (A + B + 1 + 2) AS X FROM TABLE"
	if got != want {
		t.Errorf("plain chain: got %s want %s", got, want)
	}

	got = compactOf(t, tbl(parenInner))
	want = "SELECT (A + (B + 1) + 2) AS X FROM TABLE"
	if got != want {
		t.Errorf("explicit parentheses: got %s want %s", got, want)
	}
}

func TestEmitNestedIndented(t *testing.T) {
	tbl := From("TABLE").Nest("t").Table
	out, _, err := Emit(tbl, Default())
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	want := "SELECT\n  *\nFROM\n  (\n    SELECT\n      *\n    FROM\n      TABLE\n  ) t"
	if strings.TrimRight(out, "\n") != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEmitExprCaseIndented(t *testing.T) {
	expr := When([]CaseWhen{
		{When: Gt(Ident("PRICE"), Const(100)), Then: Const("EXPENSIVE")},
		{When: Lt(Ident("PRICE"), Const(10)), Then: Const("CHEAP")},
	}, Const("MODERATE"))

	out, err := EmitExpr(expr, Default())
	if err != nil {
		t.Fatalf("EmitExpr error: %v", err)
	}
	want := "CASE\n  WHEN (PRICE > 100) THEN 'EXPENSIVE'\n  WHEN (PRICE < 10) THEN 'CHEAP'\n  ELSE 'MODERATE'\nEND"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEmitExprSwitchIndented(t *testing.T) {
	expr := SwitchOn(Ident("PRICE_TAG"), []SwitchCase{
		{Match: Const("EXPENSIVE"), Then: Const("like")},
		{Match: Const("CHEAP"), Then: Const("dislike")},
	}, nil)

	out, err := EmitExpr(expr, Default())
	if err != nil {
		t.Fatalf("EmitExpr error: %v", err)
	}
	want := "CASE PRICE_TAG\n  WHEN 'EXPENSIVE' THEN 'like'\n  WHEN 'CHEAP' THEN 'dislike'\nEND"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEmitCompactInnerJoin(t *testing.T) {
	left := From("ORDERS").Include("ORDER_ID", "CUST_ID")
	right := From("CUSTOMERS").Include("CUST_ID", "NAME").Where(Eq(Ident("CUST_ID"), Ident("CUST_ID")))
	tbl := left.InnerJoin(right.Table).Table
	got := compactOf(t, tbl)
	if !strings.Contains(got, "JOIN CUSTOMERS") || !strings.Contains(got, "ON (CUST_ID = CUST_ID)") {
		t.Errorf("unexpected join rendering: %s", got)
	}
}

func TestEmitCompactBetweenAndIn(t *testing.T) {
	tbl := From("TABLE").
		Where(IsBetween(Ident("PRICE"), Const(10), Const(100))).
		Where(InList(Ident("STATUS"), Const("A"), Const("B"))).Table
	got := compactOf(t, tbl)
	if !strings.Contains(got, "PRICE BETWEEN 10 AND 100") {
		t.Errorf("missing BETWEEN clause: %s", got)
	}
	if !strings.Contains(got, "STATUS IN ('A', 'B')") {
		t.Errorf("missing IN clause: %s", got)
	}
}
