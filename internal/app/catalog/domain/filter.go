package domain

import "strings"

// Filter is the optional set of constraints accepted by listings.
// A nil field means the constraint is absent. Min > Max is allowed and matches nothing.
type Filter struct {
	Query *string
	Tag   *string
	Min   *Price
	Max   *Price
}

// IsEmpty reports whether no constraint is set.
func (f *Filter) IsEmpty() bool {
	return f == nil || (f.Query == nil && f.Tag == nil && f.Min == nil && f.Max == nil)
}

// Matches applies the filter to a product in memory.
// Stores that evaluate filters in SQL must agree with these semantics.
func (f *Filter) Matches(p *Product) bool {
	if f == nil {
		return true
	}
	if f.Query != nil {
		q := strings.ToLower(*f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.SKU), q) {
			return false
		}
	}
	if f.Tag != nil {
		if !HasTagFold(p.Tags, *f.Tag) {
			return false
		}
	}
	if f.Min != nil && p.Price.LessThan(*f.Min) {
		return false
	}
	if f.Max != nil && p.Price.GreaterThan(*f.Max) {
		return false
	}
	return true
}

// HasTagFold reports whether tags contains tag, ignoring case.
func HasTagFold(tags []string, tag string) bool {
	want := strings.ToLower(tag)
	for _, t := range tags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}
