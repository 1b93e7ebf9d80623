package domain

import "github.com/fift2939-create/ather1/internal/locale"

// IndexedLine is a budget line together with its position in the flat
// budget list, so edits made inside a group can be written back.
type IndexedLine struct {
	Item          BudgetLineItem
	OriginalIndex int
}

// BudgetGroup is one display group of the budget.
type BudgetGroup struct {
	Category string
	Lines    []IndexedLine
}

// Subtotal sums the totals of the group's lines.
func (g BudgetGroup) Subtotal() float64 {
	var sum float64
	for _, l := range g.Lines {
		sum += l.Item.Total
	}
	return sum
}

// GroupByCategory projects the flat budget into display groups. Groups appear
// in first-seen order and lines keep their source order. Uncategorized lines
// go under the language's default label, so the result depends on lang and
// must be recomputed when it changes. items is not modified.
func GroupByCategory(items []BudgetLineItem, lang locale.Language) []BudgetGroup {
	var groups []BudgetGroup
	pos := make(map[string]int)

	for i, li := range items {
		key := li.Category.Label(lang)
		gi, ok := pos[key]
		if !ok {
			gi = len(groups)
			pos[key] = gi
			groups = append(groups, BudgetGroup{Category: key})
		}
		groups[gi].Lines = append(groups[gi].Lines, IndexedLine{Item: li, OriginalIndex: i})
	}

	return groups
}

// DisplayOrder returns the flat budget indices in the order GroupByCategory
// shows them: group by group, source order inside each group.
func DisplayOrder(items []BudgetLineItem, lang locale.Language) []int {
	order := make([]int, 0, len(items))
	for _, g := range GroupByCategory(items, lang) {
		for _, l := range g.Lines {
			order = append(order, l.OriginalIndex)
		}
	}
	return order
}
