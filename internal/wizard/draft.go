// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizard

import (
	"encoding/json"
	"fmt"
)

// Draft is the in-progress state of one form: the step being displayed
// and the full declared field set (absent fields are stored as "").
type Draft struct {
	Step   int
	Fields Fields
}

// Clone returns an independent copy.
func (d Draft) Clone() Draft {
	return Draft{Step: d.Step, Fields: d.Fields.Clone()}
}

// The wire shape groups fields one level deep, mirroring how the backend
// nests things like the address block:
//
//	{"currentStep":3,"fields":{"email":"x","address":{"city":"Chennai"}}}

// encodeDraft serializes d for the store. Encoding is deterministic
// (keys sort), so an untouched draft re-encodes byte-identical.
func encodeDraft(fm *Form, d Draft) (string, error) {
	fields := make(map[string]any)
	groups := make(map[string]map[string]string)
	for _, p := range fm.Fields {
		if p.Group == "" {
			fields[p.Name] = d.Fields.Get(p)
			continue
		}
		g, ok := groups[p.Group]
		if !ok {
			g = make(map[string]string)
			groups[p.Group] = g
			fields[p.Group] = g
		}
		g[p.Name] = d.Fields.Get(p)
	}
	doc := struct {
		CurrentStep int            `json:"currentStep"`
		Fields      map[string]any `json:"fields"`
	}{CurrentStep: d.Step, Fields: fields}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}
	return string(raw), nil
}

// decodeDraft restores a stored draft. Unknown keys are dropped, missing
// declared fields default to "". A draft that does not parse, or whose
// step is out of range, is reported malformed so the caller can fall
// back to the canonical empty draft.
func decodeDraft(fm *Form, raw string) (Draft, error) {
	var doc struct {
		CurrentStep int                        `json:"currentStep"`
		Fields      map[string]json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	if doc.CurrentStep < 1 || doc.CurrentStep > len(fm.Steps) {
		return Draft{}, fmt.Errorf("decode draft: step %d out of range", doc.CurrentStep)
	}

	d := Draft{Step: doc.CurrentStep, Fields: fm.empty()}
	groups := make(map[string]map[string]string)
	for _, p := range fm.Fields {
		if p.Group == "" {
			rawVal, ok := doc.Fields[p.Name]
			if !ok {
				continue
			}
			var v string
			if err := json.Unmarshal(rawVal, &v); err != nil {
				return Draft{}, fmt.Errorf("decode draft: field %s: %w", p, err)
			}
			d.Fields[p] = v
			continue
		}
		g, seen := groups[p.Group]
		if !seen {
			rawGroup, ok := doc.Fields[p.Group]
			if !ok {
				groups[p.Group] = nil
				continue
			}
			if err := json.Unmarshal(rawGroup, &g); err != nil {
				return Draft{}, fmt.Errorf("decode draft: group %s: %w", p.Group, err)
			}
			groups[p.Group] = g
		}
		if v, ok := g[p.Name]; ok {
			d.Fields[p] = v
		}
	}
	return d, nil
}
