package boolexpr

import (
	"sort"

	"github.com/samber/lo"
)

// Registry interns the variables of a single parse. It is created by
// Parse and returned alongside the tree; nothing is shared between
// independent parses.
type Registry struct {
	handles map[string]int
}

// An Entry pairs a variable name with its handle.
type Entry struct {
	Name   string
	Handle int
}

func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]int),
	}
}

// Intern returns the stable handle for name, creating one the first
// time the name is seen. Handles are assigned in first-seen order.
func (r *Registry) Intern(name string) int {
	handle, ok := r.handles[name]
	if !ok {
		handle = len(r.handles)
		r.handles[name] = handle
	}
	return handle
}

// All returns every interned variable, sorted alphabetically by name.
// This is the column order of any table built from the same parse.
func (r *Registry) All() []Entry {
	entries := lo.MapToSlice(r.handles, func(name string, handle int) Entry {
		return Entry{Name: name, Handle: handle}
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Names returns every interned variable name, sorted alphabetically.
func (r *Registry) Names() []string {
	return lo.Map(r.All(), func(entry Entry, _ int) string {
		return entry.Name
	})
}

// Len returns the number of distinct variables seen so far.
func (r *Registry) Len() int {
	return len(r.handles)
}
