package source

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func TestScalarTypes_SnapshotIsImmutable(t *testing.T) {
	snapshot := ScalarTypes()
	snapshot["ID"] = "number"

	if got := ScalarTypes()["ID"]; got != "string" {
		t.Errorf("registry entry for ID = %q, want %q", got, "string")
	}
}

func TestSetScalarTypes_MergesOverrides(t *testing.T) {
	SetScalarTypes(map[string]string{"Date": "Date"})

	snapshot := ScalarTypes()
	if got := snapshot["Date"]; got != "Date" {
		t.Errorf("registry entry for Date = %q, want %q", got, "Date")
	}
	// existing entries survive a merge
	if got := snapshot["Int"]; got != "number" {
		t.Errorf("registry entry for Int = %q, want %q", got, "number")
	}

	// a resolver built after the merge sees the override
	resolver := NewTypeResolver(ScalarTypes())
	if got := resolver.TypeName(ast.NamedType("Date", nil)); got != "Date" {
		t.Errorf("TypeName(Date) = %q, want %q", got, "Date")
	}
}
