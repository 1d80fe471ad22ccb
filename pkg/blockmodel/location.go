package blockmodel

import "strings"

// DefaultNamespace is used for identifiers written without a namespace prefix.
const DefaultNamespace = "minecraft"

// BuiltinPrefix marks a parent that names a built-in generation scheme rather than a file.
const BuiltinPrefix = "builtin/"

// ResourceLocation is a namespaced asset identifier such as "minecraft:block/stone".
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseLocation splits s into namespace and path. When s carries no namespace
// (or an empty one) the given default is used.
func ParseLocation(defaultNamespace, s string) ResourceLocation {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		return ResourceLocation{Namespace: defaultNamespace, Path: s}
	}
	if ns == "" {
		ns = defaultNamespace
	}
	return ResourceLocation{Namespace: ns, Path: path}
}

// NormaliseLocation returns s in its "namespace:path" form.
func NormaliseLocation(defaultNamespace, s string) string {
	return ParseLocation(defaultNamespace, s).String()
}

func (l ResourceLocation) String() string {
	return l.Namespace + ":" + l.Path
}

// IsBuiltin reports whether the location names a built-in scheme.
func (l ResourceLocation) IsBuiltin() bool {
	return strings.HasPrefix(l.Path, BuiltinPrefix)
}
