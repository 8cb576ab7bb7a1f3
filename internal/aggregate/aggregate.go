// Package aggregate derives per-category and per-month totals from
// categorized transactions.
//
// Category shares are computed in two phases: Accumulate buckets every
// transaction into its (kind-group, category) accumulator, then Finalize
// writes each kind-group's grand total into its member categories so relative
// shares can be derived. The split is deliberate — a category's share of its
// group cannot be known until every entry in the group has been seen, and a
// partially built aggregate should not pretend otherwise with an implicit
// zero total.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"accountcheck/internal/models"
)

// Groups holds the category accumulators of both kind-groups. Category order
// within a group is encounter order, matching the document.
type Groups struct {
	byGroup map[models.KindGroup][]*models.Category
	index   map[models.KindGroup]map[string]*models.Category

	finalized bool
}

// Accumulate buckets transactions by kind-group and category label. A
// category accumulator is created lazily on the first transaction carrying
// its label. Empty input yields empty (not nil-panicking) groups.
func Accumulate(entries []models.Transaction) *Groups {
	g := &Groups{
		byGroup: make(map[models.KindGroup][]*models.Category),
		index:   make(map[models.KindGroup]map[string]*models.Category),
	}
	for _, entry := range entries {
		group := models.GroupOf(entry.Kind)
		categories, ok := g.index[group]
		if !ok {
			categories = make(map[string]*models.Category)
			g.index[group] = categories
		}
		category, ok := categories[entry.Category]
		if !ok {
			category = models.NewCategory(entry.Category, group)
			categories[entry.Category] = category
			g.byGroup[group] = append(g.byGroup[group], category)
		}
		category.Append(entry)
	}
	return g
}

// Finalize computes each kind-group's grand total and sets it as every member
// category's RelativeTotal, enabling per-category relative shares. Calling it
// more than once is harmless.
func (g *Groups) Finalize() {
	for _, categories := range g.byGroup {
		total := decimal.Zero
		for _, category := range categories {
			total = total.Add(category.Amount())
		}
		for _, category := range categories {
			category.RelativeTotal = total
		}
	}
	g.finalized = true
}

// Finalized reports whether relative totals have been computed.
func (g *Groups) Finalized() bool {
	return g.finalized
}

// Group returns the categories of one kind-group in encounter order.
func (g *Groups) Group(group models.KindGroup) []*models.Category {
	return g.byGroup[group]
}

// All returns every category, credits first, then the debit group, each in
// encounter order.
func (g *Groups) All() []*models.Category {
	all := make([]*models.Category, 0, len(g.byGroup[models.GroupCredit])+len(g.byGroup[models.GroupDebit]))
	all = append(all, g.byGroup[models.GroupCredit]...)
	all = append(all, g.byGroup[models.GroupDebit]...)
	return all
}

// MonthBucket collects the transactions of one (month, category) pair for
// time-series views. Month series need no grand-total normalization, so there
// is no finalize step here.
type MonthBucket struct {
	Month    time.Time
	Category string
	Entries  []models.Transaction
}

// Amount is the sum of the bucket's entry amounts.
func (b *MonthBucket) Amount() decimal.Decimal {
	return models.SumAmounts(b.Entries)
}

// MonthSeries groups transactions by calendar month and category. Buckets are
// ordered by month ascending, then by category encounter order within the
// month, so repeated runs over the same input produce identical output.
func MonthSeries(entries []models.Transaction) []*MonthBucket {
	type key struct {
		month    time.Time
		category string
	}
	index := make(map[key]*MonthBucket)
	var buckets []*MonthBucket

	for _, entry := range entries {
		k := key{month: entry.Month(), category: entry.Category}
		bucket, ok := index[k]
		if !ok {
			bucket = &MonthBucket{Month: k.month, Category: entry.Category}
			index[k] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.Entries = append(bucket.Entries, entry)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})
	return buckets
}
