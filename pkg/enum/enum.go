// Copyright (c) 2025, The vocab Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enum

import (
	stderrors "errors"
	"fmt"
	"iter"

	"github.com/mchmarny/vocab/pkg/errors"
)

// FieldLabel is the field key every member must carry. Its value is the
// human-readable display text for the member.
const FieldLabel = "label"

// Sentinel errors for enumeration construction and lookup failures.
// All errors returned by this package wrap one of these, so callers can
// use errors.Is regardless of the added context.
var (
	ErrDuplicateMember = stderrors.New("duplicate enumeration member")
	ErrInvalidMember   = stderrors.New("invalid enumeration member")
	ErrUnknownName     = stderrors.New("unknown enumeration member name")
	ErrUnknownValue    = stderrors.New("unknown enumeration member value")
)

// Member is a single entry of an Enumeration: a symbolic name used in code,
// the underlying stored value, and a field map carrying at least the label.
type Member[V comparable] struct {
	Name   string         `json:"name" yaml:"name"`
	Value  V              `json:"value" yaml:"value"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// M creates a Member with the required value, name, and label.
// Additional fields can be attached with With.
func M[V comparable](value V, name, label string) Member[V] {
	return Member[V]{
		Name:  name,
		Value: value,
		Fields: map[string]any{
			FieldLabel: label,
		},
	}
}

// With returns a copy of the member with an additional named field set.
// The receiver is not modified, so members can be built by chaining
// inside a construction literal.
func (m Member[V]) With(field string, value any) Member[V] {
	fields := make(map[string]any, len(m.Fields)+1)
	for k, v := range m.Fields {
		fields[k] = v
	}
	fields[field] = value
	m.Fields = fields
	return m
}

// Label returns the member's display text.
func (m Member[V]) Label() string {
	if s, ok := m.Fields[FieldLabel].(string); ok {
		return s
	}
	return ""
}

// Field returns the named auxiliary field and whether it was set.
func (m Member[V]) Field(name string) (any, bool) {
	v, ok := m.Fields[name]
	return v, ok
}

// Choice is a (value, label) pair in definition order, the shape expected
// by closed-choice consumers such as form fields or CLI usage text.
type Choice[V comparable] struct {
	Value V      `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Enumeration is a closed, ordered, immutable set of members. It is built
// once, validated once, and safe for concurrent readers without locking.
type Enumeration[V comparable] struct {
	members []Member[V]
	byName  map[string]int
	byValue map[V]int
}

// New builds an Enumeration from the given members, in the given order.
// Construction fails if any member has an empty name or an explicitly
// empty label, or if two members share a name or a value. A member with
// no label field gets its name as the label. A failed construction
// returns no partially usable enumeration.
func New[V comparable](members ...Member[V]) (*Enumeration[V], error) {
	e := &Enumeration[V]{
		members: make([]Member[V], len(members)),
		byName:  make(map[string]int, len(members)),
		byValue: make(map[V]int, len(members)),
	}

	for i, m := range members {
		if m.Name == "" {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput,
				"member name must not be empty", ErrInvalidMember,
				map[string]any{"position": i})
		}
		if label, ok := m.Fields[FieldLabel]; ok {
			if s, isStr := label.(string); !isStr || s == "" {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput,
					fmt.Sprintf("member %q has an empty label", m.Name), ErrInvalidMember,
					map[string]any{"name": m.Name})
			}
		} else {
			m = m.With(FieldLabel, m.Name)
		}
		if _, ok := e.byName[m.Name]; ok {
			return nil, errors.WrapWithContext(errors.ErrCodeDuplicateMember,
				fmt.Sprintf("duplicate member name %q", m.Name), ErrDuplicateMember,
				map[string]any{"name": m.Name})
		}
		if _, ok := e.byValue[m.Value]; ok {
			return nil, errors.WrapWithContext(errors.ErrCodeDuplicateMember,
				fmt.Sprintf("duplicate member value %v", m.Value), ErrDuplicateMember,
				map[string]any{"name": m.Name, "value": m.Value})
		}
		e.members[i] = m
		e.byName[m.Name] = i
		e.byValue[m.Value] = i
	}

	return e, nil
}

// MustNew builds an Enumeration and panics on invalid input.
// Use only for package-level definitions where the member list is a
// literal known to be valid. For runtime data use New.
func MustNew[V comparable](members ...Member[V]) *Enumeration[V] {
	e, err := New(members...)
	if err != nil {
		panic(fmt.Sprintf("enum.MustNew: %v", err))
	}
	return e
}

// Len returns the number of members.
func (e *Enumeration[V]) Len() int {
	return len(e.members)
}

// Members returns the members in definition order. The sequence is
// restartable: each range over it starts from the first member.
func (e *Enumeration[V]) Members() iter.Seq[Member[V]] {
	return func(yield func(Member[V]) bool) {
		for _, m := range e.members {
			if !yield(m) {
				return
			}
		}
	}
}

// ByName returns the member with the given symbolic name.
func (e *Enumeration[V]) ByName(name string) (Member[V], error) {
	i, ok := e.byName[name]
	if !ok {
		return Member[V]{}, errors.WrapWithContext(errors.ErrCodeUnknownName,
			fmt.Sprintf("no member named %q", name), ErrUnknownName,
			map[string]any{"name": name})
	}
	return e.members[i], nil
}

// ByValue returns the member with the given underlying value.
func (e *Enumeration[V]) ByValue(v V) (Member[V], error) {
	i, ok := e.byValue[v]
	if !ok {
		return Member[V]{}, errors.WrapWithContext(errors.ErrCodeUnknownValue,
			fmt.Sprintf("no member with value %v", v), ErrUnknownValue,
			map[string]any{"value": v})
	}
	return e.members[i], nil
}

// LabelFor returns the display label of the member with the given value.
func (e *Enumeration[V]) LabelFor(v V) (string, error) {
	m, err := e.ByValue(v)
	if err != nil {
		return "", err
	}
	return m.Label(), nil
}

// Value returns the underlying value for the given symbolic name.
// This is the programmatic replacement for hard-coding stored values.
func (e *Enumeration[V]) Value(name string) (V, error) {
	m, err := e.ByName(name)
	if err != nil {
		var zero V
		return zero, err
	}
	return m.Value, nil
}

// MustValue returns the underlying value for the given name and panics if
// the name is not part of the enumeration. Intended for binding
// package-level symbols to members of a package-level enumeration.
func (e *Enumeration[V]) MustValue(name string) V {
	v, err := e.Value(name)
	if err != nil {
		panic(fmt.Sprintf("enum.MustValue: %v", err))
	}
	return v
}

// Contains reports whether a member with the given name exists.
func (e *Enumeration[V]) Contains(name string) bool {
	_, ok := e.byName[name]
	return ok
}

// ContainsValue reports whether a member with the given value exists.
func (e *Enumeration[V]) ContainsValue(v V) bool {
	_, ok := e.byValue[v]
	return ok
}

// Names returns the member names in definition order.
func (e *Enumeration[V]) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Choices returns the (value, label) pairs in definition order, suitable
// for populating a closed-choice field. The order is user-visible and
// always matches the definition order.
func (e *Enumeration[V]) Choices() []Choice[V] {
	choices := make([]Choice[V], len(e.members))
	for i, m := range e.members {
		choices[i] = Choice[V]{Value: m.Value, Label: m.Label()}
	}
	return choices
}

// Coerce accepts either an underlying value or a symbolic name string and
// normalizes it to the underlying value. Useful when decoding external
// data (e.g. JSON) that may carry either form. Unlike raw map lookups,
// both forms are validated against the member set.
func (e *Enumeration[V]) Coerce(raw any) (V, error) {
	if v, ok := raw.(V); ok {
		if e.ContainsValue(v) {
			return v, nil
		}
	}
	if s, ok := raw.(string); ok {
		if m, err := e.ByName(s); err == nil {
			return m.Value, nil
		}
	}
	var zero V
	return zero, errors.WrapWithContext(errors.ErrCodeUnknownValue,
		fmt.Sprintf("cannot coerce %v to an enumeration member", raw), ErrUnknownValue,
		map[string]any{"raw": raw})
}
