package function

import (
	"math"
	"testing"
)

func TestSphere_Evaluate(t *testing.T) {
	f := NewSphere(2)

	y, err := f.Evaluate([][]float64{{0, 0}, {1, 2}, {-3, 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 5, 25}
	for i, w := range want {
		if y[i][0] != w {
			t.Errorf("point %d: expected %g, got %g", i, w, y[i][0])
		}
	}
}

func TestSphere_Evaluate_DimensionMismatch(t *testing.T) {
	f := NewSphere(3)
	if _, err := f.Evaluate([][]float64{{1, 2}}); err == nil {
		t.Error("expected error for wrong input dimensionality")
	}
}

func TestSphere_QueryRecording(t *testing.T) {
	f := NewSphere(2)

	if _, err := f.Evaluate([][]float64{{1, 1}, {2, 2}}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Evaluate([][]float64{{3, 3}}); err != nil {
		t.Fatal(err)
	}

	queries := f.Queries()
	if len(queries) != 2 {
		t.Fatalf("expected 2 recorded queries, got %d", len(queries))
	}
	if queries[0].NQueried != 2 || queries[1].NQueried != 1 {
		t.Errorf("unexpected query sizes: %+v", queries)
	}
	if queries[0].Derivative {
		t.Error("expected no derivative request")
	}

	f.Reset()
	if len(f.Queries()) != 0 {
		t.Error("expected no queries after reset")
	}
}

func TestSphere_Properties_ExcludeCounter(t *testing.T) {
	f := NewSphere(4)
	if _, err := f.Evaluate([][]float64{{1, 2, 3, 4}}); err != nil {
		t.Fatal(err)
	}

	props := f.Properties()
	if props["dimensions"] != 4 {
		t.Errorf("expected dimensions 4, got %v", props["dimensions"])
	}
	for key := range props {
		if key == "counter" || key == "queries" {
			t.Errorf("properties must not expose the query counter, found %q", key)
		}
	}
}

func TestRastrigin_Evaluate(t *testing.T) {
	f := NewRastrigin(3)

	y, err := f.Evaluate([][]float64{{0, 0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(y[0][0]) > 1e-9 {
		t.Errorf("expected global minimum 0 at origin, got %g", y[0][0])
	}
}

func TestRastrigin_Ranges(t *testing.T) {
	f := NewRastrigin(2)
	ranges := f.Ranges()
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	for i, r := range ranges {
		if r[0] != -5.12 || r[1] != 5.12 {
			t.Errorf("range %d: expected [-5.12, 5.12], got %v", i, r)
		}
	}
}

func TestNew(t *testing.T) {
	f, err := New(TypeSphere, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name() != "sphere" {
		t.Errorf("expected sphere, got %s", f.Name())
	}

	f, err = New(TypeRastrigin, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name() != "rastrigin" {
		t.Errorf("expected rastrigin, got %s", f.Name())
	}

	if _, err := New(Type("ackley"), 2); err == nil {
		t.Error("expected error for unknown function type")
	}
}

func TestType_IsValid(t *testing.T) {
	if !TypeSphere.IsValid() || !TypeRastrigin.IsValid() {
		t.Error("built-in types should be valid")
	}
	if Type("ackley").IsValid() {
		t.Error("unknown type should not be valid")
	}
}
