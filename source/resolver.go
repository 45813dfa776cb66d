package source

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// TypeResolver flattens schema type references into TypeScript type names
// against a fixed scalar mapping. It owns its own copy of the mapping, so a
// resolver built from one snapshot is unaffected by later registry mutation.
type TypeResolver struct {
	scalars    map[string]string
	primitives map[string]struct{}
}

func NewTypeResolver(scalars map[string]string) *TypeResolver {
	primitives := make(map[string]struct{}, len(scalars))
	for _, primitive := range scalars {
		primitives[primitive] = struct{}{}
	}

	return &TypeResolver{scalars: scalars, primitives: primitives}
}

// TypeName reduces a possibly wrapped type reference to a flat name. List
// wrapping appends "[]"; non-null wrapping is erased; named types are mapped
// through the scalar table or returned verbatim.
func (r *TypeResolver) TypeName(t *ast.Type) string {
	if t == nil {
		return ""
	}
	if t.Elem != nil {
		return r.TypeName(t.Elem) + "[]"
	}
	if primitive, ok := r.scalars[t.NamedType]; ok {
		return primitive
	}

	return t.NamedType
}

// ResolveName applies the list and scalar rules of TypeName to an already
// flattened name. Operation signatures are resolved through this at render
// time, so a scalar inside a flattened list still maps to its primitive.
func (r *TypeResolver) ResolveName(name string) string {
	switch {
	case strings.HasSuffix(name, "[]"):
		return r.ResolveName(strings.TrimSuffix(name, "[]")) + "[]"
	case strings.HasSuffix(name, "!"):
		return r.ResolveName(strings.TrimSuffix(name, "!"))
	}
	if primitive, ok := r.scalars[name]; ok {
		return primitive
	}

	return name
}

// IsPrimitive reports whether name is a TypeScript primitive produced by the
// scalar mapping. Primitive names are exempt from prefix/suffix formatting.
func (r *TypeResolver) IsPrimitive(name string) bool {
	_, ok := r.primitives[name]
	return ok
}
