// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizard

import "sort"

// ===== FIELD ADDRESSING =====

// Path names one field with at most one grouping level. A bare field has
// an empty Group; a grouped field reads as "group.name" when rendered.
// Paths are declared once in the form definition so typos fail loudly at
// the controller boundary instead of silently creating stray keys.
type Path struct {
	Group string
	Name  string
}

// Field builds an ungrouped path.
func Field(name string) Path { return Path{Name: name} }

// Grouped builds a path under a group.
func Grouped(group, name string) Path { return Path{Group: group, Name: name} }

func (p Path) String() string {
	if p.Group == "" {
		return p.Name
	}
	return p.Group + "." + p.Name
}

// ===== FIELD BAG =====

// Fields is the flat value bag of a draft, keyed by Path. Values are
// always strings; typing happens at submission time.
type Fields map[Path]string

// Get returns the value at p, or "" when unset.
func (f Fields) Get(p Path) string { return f[p] }

// Clone returns an independent copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// ===== FORM DEFINITION =====

// Check is an optional per-step predicate over the current fields. It
// runs only after every required field is non-empty.
type Check func(f Fields) error

// Step is one page of a form. The terminal step of every form is a
// read-only review with no requirements of its own.
type Step struct {
	Title    string
	Required []Path
	Check    Check
}

// Form is the static definition of one wizard: its identity (used to
// namespace the persisted draft), the declared field set, the ordered
// steps, and an optional derivation hook run after every field write.
type Form struct {
	ID     string
	Fields []Path
	Steps  []Step

	// Derive recomputes derived fields in place. Derived values always
	// win over anything previously stored at their path.
	Derive func(f Fields)
}

// Declared reports whether p is part of the form's field set.
func (fm *Form) Declared(p Path) bool {
	for _, d := range fm.Fields {
		if d == p {
			return true
		}
	}
	return false
}

// Groups returns the form's declared group names, sorted.
func (fm *Form) Groups() []string {
	seen := map[string]bool{}
	for _, p := range fm.Fields {
		if p.Group != "" {
			seen[p.Group] = true
		}
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// empty returns the canonical empty field bag: every declared field
// present with value "".
func (fm *Form) empty() Fields {
	out := make(Fields, len(fm.Fields))
	for _, p := range fm.Fields {
		out[p] = ""
	}
	return out
}
