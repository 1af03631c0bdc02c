package fingerprint

import (
	"strings"
	"testing"

	"github.com/pgschema/schemadiff/ir"
	"github.com/pgschema/schemadiff/tableschema"
)

func TestCompute(t *testing.T) {
	table := &ir.Table{
		Name:   "users",
		Engine: "InnoDB",
		Columns: []*ir.Column{
			{Name: "id", AutoIncrement: true, Type: ir.Type{Name: "int"}},
		},
	}

	first, err := Compute(table)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(first.Hash) != 64 {
		t.Errorf("Hash length = %d; want 64", len(first.Hash))
	}

	second, err := Compute(table)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if err := Compare(first, second); err != nil {
		t.Errorf("fingerprints of the same table differ: %v", err)
	}

	table.Engine = "MyISAM"
	third, err := Compute(table)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	err = Compare(first, third)
	if err == nil {
		t.Fatal("expected mismatch after changing the engine")
	}
	if !strings.Contains(err.Error(), first.Hash[:16]) {
		t.Errorf("error %q should show the expected hash prefix", err)
	}
}

func TestComputeReducedTable(t *testing.T) {
	fp, err := Compute(&tableschema.Table{Name: "users"})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got := fp.String(); got != "Table fingerprint: "+fp.Hash[:8] {
		t.Errorf("String() = %q", got)
	}
}

func TestComputeUnencodable(t *testing.T) {
	if _, err := Compute(map[string]any{"bad": make(chan int)}); err == nil {
		t.Error("expected an error for a value JSON cannot encode")
	}
}
