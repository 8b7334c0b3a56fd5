package catalog

import (
	"cmp"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/matrices/pkg/core/shapes"
)

// Entry is the type-erased view of a registered matrix type: what reporting
// tools need to enumerate the catalog without knowing the element types.
//
// The descriptors of all three families (NumericType, IntegerType,
// GenericType) implement it directly; NewAny builds a zero-valued instance
// through the descriptor, losing only the static element type.
type Entry interface {
	Name() string
	ID() string
	DType() dtypes.DType
	Shape() shapes.Shape
	Size() int
	Memory() uintptr
	NewAny() any
	String() string
}

// registered is keyed by descriptor id, so several same-named registrations
// (say a type and its strict twin) coexist.
var registered = make(map[string]Entry)

// Register adds a matrix type to the catalog registry. Registering the same
// descriptor twice is a no-op; two descriptors with equal names but
// different ids both stay.
//
// To be safe, call Register during initialization of a package.
func Register[E Entry](entry E) E {
	registered[entry.ID()] = entry
	return entry
}

// Entries returns all registered types, sorted by name (ties broken by id so
// the order is stable).
func Entries() []Entry {
	entries := make([]Entry, 0, len(registered))
	for _, entry := range registered {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return entries
}

// ByName returns the registered types with the given name, in stable (id)
// order. Names are not unique, so this can return more than one entry.
func ByName(name string) []Entry {
	var entries []Entry
	for _, entry := range registered {
		if entry.Name() == name {
			entries = append(entries, entry)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return entries
}
