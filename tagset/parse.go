// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of UDCONV.
//
//  UDCONV is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  UDCONV is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with UDCONV.  If not, see <https://www.gnu.org/licenses/>.

package tagset

import (
	"fmt"
	"strings"
)

// MalformedTagError reports a raw tag which cannot be matched against
// the schema registry. It is recoverable - affected tokens fall back
// to a generic foreign/unclassified treatment.
type MalformedTagError struct {
	Tag    string
	Reason string
}

func (err MalformedTagError) Error() string {
	return fmt.Sprintf("malformed tag %s: %s", err.Tag, err.Reason)
}

// AttrRecord is a parsed tag: the class name plus the positionally
// matched slot values.
type AttrRecord struct {
	Class  string              `json:"class"`
	Raw    string              `json:"raw"`
	Fields []string            `json:"fields"`
	Values map[Category]string `json:"values"`
}

// Value returns the slot value of the given category or an empty
// string when the slot is absent from the tag.
func (rec AttrRecord) Value(cat Category) string {
	return rec.Values[cat]
}

// Has tests whether the tag filled the slot of the given category.
func (rec AttrRecord) Has(cat Category) bool {
	_, ok := rec.Values[cat]
	return ok
}

// UDValue returns the slot value of the given category translated to
// its UD feature value, or an empty string when the slot is absent.
func (rec AttrRecord) UDValue(cat Category) string {
	return UDValue(rec.Values[cat])
}

// Parse matches a raw colon-separated tag against the schema registry.
// The text before the first colon names the class; the remaining
// fields are assigned to the class's slots left to right. Any trailing
// suffix of the slots may be omitted. An unregistered class, too many
// fields or a value outside its slot's legal set yields a
// MalformedTagError; the function never consults anything beyond the
// tag itself.
func Parse(raw string) (AttrRecord, error) {
	if raw == "" {
		return AttrRecord{}, MalformedTagError{Tag: raw, Reason: "empty tag"}
	}
	parts := strings.Split(raw, ":")
	class := parts[0]
	slots, ok := classSlots[class]
	if !ok {
		return AttrRecord{}, MalformedTagError{Tag: raw, Reason: fmt.Sprintf("unknown class %s", class)}
	}
	fields := parts[1:]
	if len(fields) > len(slots) {
		return AttrRecord{}, MalformedTagError{
			Tag:    raw,
			Reason: fmt.Sprintf("%d values for %d slots of class %s", len(fields), len(slots), class),
		}
	}
	values := make(map[Category]string, len(fields))
	for i, field := range fields {
		cat, known := valueCategory[field]
		if !known {
			return AttrRecord{}, MalformedTagError{
				Tag:    raw,
				Reason: fmt.Sprintf("unknown value %s in slot %d", field, i+1),
			}
		}
		if cat != slots[i] {
			return AttrRecord{}, MalformedTagError{
				Tag:    raw,
				Reason: fmt.Sprintf("value %s is a %s value but slot %d of %s expects %s", field, cat, i+1, class, slots[i]),
			}
		}
		values[slots[i]] = field
	}
	return AttrRecord{Class: class, Raw: raw, Fields: fields, Values: values}, nil
}
