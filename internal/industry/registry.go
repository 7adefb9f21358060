package industry

import (
	"fmt"

	"smedecl/pkg/platform/sentinel"
)

// UnknownIndustryError is returned by Lookup for identifiers outside the table.
// It matches sentinel.ErrNotFound with errors.Is.
type UnknownIndustryError struct {
	ID ID
}

func (e *UnknownIndustryError) Error() string {
	return fmt.Sprintf("unknown industry: %s", e.ID)
}

func (e *UnknownIndustryError) Is(target error) bool {
	return target == sentinel.ErrNotFound
}

var index = func() map[ID]int {
	m := make(map[ID]int, len(standards))
	for i, s := range standards {
		m[s.ID] = i
	}
	return m
}()

// Lookup returns a copy of the standard registered for id.
func Lookup(id ID) (Standard, error) {
	i, ok := index[id]
	if !ok {
		return Standard{}, &UnknownIndustryError{ID: id}
	}
	return standards[i].clone(), nil
}

// Known reports whether id is registered.
func Known(id ID) bool {
	_, ok := index[id]
	return ok
}

// ListAll returns every industry in declaration order.
func ListAll() []Summary {
	out := make([]Summary, len(standards))
	for i, s := range standards {
		out[i] = Summary{ID: s.ID, Name: s.Name}
	}
	return out
}

func (s Standard) clone() Standard {
	s.Medium = s.Medium.clone()
	s.Small = s.Small.clone()
	s.Micro = s.Micro.clone()
	s.RequiredFields = append([]Metric(nil), s.RequiredFields...)
	return s
}

func (t TierRule) clone() TierRule {
	t.Employees = t.Employees.clone()
	t.Revenue = t.Revenue.clone()
	t.Assets = t.Assets.clone()
	return t
}

func (r *Range) clone() *Range {
	if r == nil {
		return nil
	}
	out := &Range{}
	if r.Min != nil {
		v := *r.Min
		out.Min = &v
	}
	if r.Max != nil {
		v := *r.Max
		out.Max = &v
	}
	return out
}
