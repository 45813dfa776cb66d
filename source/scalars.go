package source

import "maps"

// scalarTypes maps built-in schema scalar names to TypeScript primitives. It
// is process-wide and read-mostly: callers merge overrides before generation
// starts, and each pipeline run resolves against a snapshot taken once.
var scalarTypes = map[string]string{
	"ID":      "string",
	"String":  "string",
	"Boolean": "boolean",
	"Int":     "number",
	"Float":   "number",
}

// ScalarTypes returns a snapshot of the current scalar mapping. Mutating the
// returned map does not affect the live registry.
func ScalarTypes() map[string]string {
	return maps.Clone(scalarTypes)
}

// SetScalarTypes merges overrides into the registry. New entries are added,
// existing entries overwritten; entries are never removed.
func SetScalarTypes(overrides map[string]string) {
	maps.Copy(scalarTypes, overrides)
}
