// Package valueobject contains domain value objects for the alumni back office.
package valueobject

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// UnknownPeriodKey groups donations that carry no donation date.
const UnknownPeriodKey = "unknown"

// ReportFilter narrows the donation snapshot before aggregation.
// Zero values mean "no constraint".
type ReportFilter struct {
	StartDate *time.Time // Inclusive, compared by calendar date
	EndDate   *time.Time // Inclusive, compared by calendar date
	Category  string     // Empty or entity.AllCategories disables the category filter
	DonorName string     // Case-insensitive substring
}

// FiltersCategory reports whether the filter restricts the category.
func (f ReportFilter) FiltersCategory() bool {
	return f.Category != "" && f.Category != entity.AllCategories
}

// PeriodLabel describes the date range of the filter for people.
func (f ReportFilter) PeriodLabel() string {
	const layout = "January 2, 2006"
	switch {
	case f.StartDate != nil && f.EndDate != nil:
		return f.StartDate.Format(layout) + " to " + f.EndDate.Format(layout)
	case f.StartDate != nil:
		return "Since " + f.StartDate.Format(layout)
	case f.EndDate != nil:
		return "Up to " + f.EndDate.Format(layout)
	default:
		return "All dates"
	}
}

// GroupTotal is the running amount and count for one grouping key.
type GroupTotal struct {
	Amount decimal.Decimal
	Count  int
}

// GroupEntry is a key with its totals, as returned by the sorted views of a Grouping.
type GroupEntry struct {
	Key string
	GroupTotal
}

// Grouping maps a string key to its totals while remembering first-encounter order.
type Grouping struct {
	keys   []string
	totals map[string]GroupTotal
}

// NewGrouping creates an empty grouping.
func NewGrouping() Grouping {
	return Grouping{totals: make(map[string]GroupTotal)}
}

// Add accumulates one donation amount under key.
func (g *Grouping) Add(key string, amount decimal.Decimal) {
	if g.totals == nil {
		g.totals = make(map[string]GroupTotal)
	}
	total, ok := g.totals[key]
	if !ok {
		g.keys = append(g.keys, key)
		total.Amount = decimal.Zero
	}
	total.Amount = total.Amount.Add(amount)
	total.Count++
	g.totals[key] = total
}

// Len returns the number of distinct keys.
func (g Grouping) Len() int {
	return len(g.keys)
}

// Keys returns the keys in first-encounter order.
func (g Grouping) Keys() []string {
	return slices.Clone(g.keys)
}

// Get returns the totals for key.
func (g Grouping) Get(key string) (GroupTotal, bool) {
	total, ok := g.totals[key]
	return total, ok
}

// Entries returns the entries in first-encounter order.
func (g Grouping) Entries() []GroupEntry {
	entries := make([]GroupEntry, 0, len(g.keys))
	for _, key := range g.keys {
		entries = append(entries, GroupEntry{Key: key, GroupTotal: g.totals[key]})
	}
	return entries
}

// SortedByKey returns the entries ordered by key ascending.
// Keys of the form YYYY-MM and YYYY sort chronologically this way.
func (g Grouping) SortedByKey() []GroupEntry {
	entries := g.Entries()
	slices.SortStableFunc(entries, func(a, b GroupEntry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return entries
}

// SortedByAmountDesc returns the entries ordered by amount descending.
// Ties keep first-encounter order.
func (g Grouping) SortedByAmountDesc() []GroupEntry {
	entries := g.Entries()
	slices.SortStableFunc(entries, func(a, b GroupEntry) int {
		return b.Amount.Cmp(a.Amount)
	})
	return entries
}

// SumAmount returns the sum of every key's amount.
func (g Grouping) SumAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, total := range g.totals {
		sum = sum.Add(total.Amount)
	}
	return sum
}

// SumCount returns the sum of every key's count.
func (g Grouping) SumCount() int {
	count := 0
	for _, total := range g.totals {
		count += total.Count
	}
	return count
}

// Report is an immutable snapshot of aggregated donation data.
type Report struct {
	Count       int
	TotalAmount decimal.Decimal
	AvgAmount   decimal.Decimal // Zero when Count is zero
	ByCategory  Grouping
	ByMonth     Grouping // Keyed YYYY-MM
	ByYear      Grouping // Keyed YYYY
	ByCurrency  Grouping // Keyed by ISO currency code
	Donations   []*entity.Donation
	Filter      ReportFilter
	GeneratedAt time.Time
}

// IsEmpty reports whether the report holds no donations.
func (r *Report) IsEmpty() bool {
	return r.Count == 0
}

// IsMultiCurrency reports whether the filtered donations use more than one currency.
func (r *Report) IsMultiCurrency() bool {
	return r.ByCurrency.Len() > 1
}

// SectionSelection controls which optional sections an export includes.
type SectionSelection struct {
	Category bool
	Monthly  bool
	Yearly   bool
	Detailed bool
}

// AllSections returns a selection with every section enabled.
func AllSections() SectionSelection {
	return SectionSelection{Category: true, Monthly: true, Yearly: true, Detailed: true}
}

// ParseSectionSelection parses a comma-separated list such as "category,monthly".
// An empty list selects every section.
func ParseSectionSelection(list string) (SectionSelection, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return AllSections(), nil
	}

	var sel SectionSelection
	for _, name := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "category":
			sel.Category = true
		case "monthly":
			sel.Monthly = true
		case "yearly":
			sel.Yearly = true
		case "detailed":
			sel.Detailed = true
		case "":
		default:
			return SectionSelection{}, fmt.Errorf("unknown report section %q", name)
		}
	}
	return sel, nil
}
