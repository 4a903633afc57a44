package core

import "strings"

// Search is a fixed-field substring match: a record matches when any of its
// whitelisted textual fields contains the query, case-insensitively. An empty
// query matches everything. No tokenization, no fuzziness, no weighting.

// Searchable is anything a free-text query can be applied to.
type Searchable interface {
	Matches(query string) bool
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

func anyContains(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	for _, f := range fields {
		if containsFold(f, query) {
			return true
		}
	}
	return false
}

// Matches checks name, company and email.
func (c Contact) Matches(query string) bool {
	return anyContains(query, c.Name, c.Company, c.Email)
}

// Matches checks title, company and contact name.
func (o Opportunity) Matches(query string) bool {
	return anyContains(query, o.Title, o.Company, o.Contact)
}

// Matches checks title, description and related account.
func (t Task) Matches(query string) bool {
	return anyContains(query, t.Title, t.Description, t.RelatedTo)
}

// Matches checks title, description and related account.
func (a Appointment) Matches(query string) bool {
	return anyContains(query, a.Title, a.Description, a.RelatedTo)
}

// FilterMatching returns the records matching the query, in input order.
func FilterMatching[T Searchable](items []T, query string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Matches(query) {
			out = append(out, item)
		}
	}
	return out
}
