package sqlforge

import "testing"

func TestFacadeEmitCompact(t *testing.T) {
	tests := []struct {
		name     string
		build    func() Table
		expected string
	}{
		{
			name: "projection with predicate",
			build: func() Table {
				return From("ORDERS").
					Include("ORDER_ID", "TOTAL").
					Where(Gt(Ident("TOTAL"), Const(100))).Table
			},
			expected: "SELECT ORDER_ID, TOTAL FROM ORDERS WHERE (TOTAL > 100)",
		},
		{
			name: "derived column",
			build: func() Table {
				return From("ORDERS").
					Define(Bind("DOUBLE_TOTAL", Times(Ident("TOTAL"), Const(2)))).
					Include("ORDER_ID", "DOUBLE_TOTAL").Table
			},
			expected: "SELECT ORDER_ID, (TOTAL * 2) AS DOUBLE_TOTAL FROM ORDERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EmitCompact(tt.build(), Default())
			if err != nil {
				t.Fatalf("EmitCompact error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got  %s\nwant %s", got, tt.expected)
			}
		})
	}
}

func TestFacadeEmitExpr(t *testing.T) {
	got, err := EmitExpr(Plus(Ident("A"), Const(1)), Default())
	if err != nil {
		t.Fatalf("EmitExpr error: %v", err)
	}
	if want := "A + 1"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestFacadeEmitReturnsTagMap(t *testing.T) {
	tbl := From("ORDERS").Include("ORDER_ID").Table
	_, tags, err := Emit(tbl, Default())
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	if tags == nil {
		t.Errorf("expected a non-nil TagMap")
	}
}
