// Package insights computes budget-vs-actual spending figures. It is a pure
// computation over in-memory data: it never touches storage and never fails.
package insights

import (
	"sort"

	"fintrack/internal/models"
)

// Status classifies a category's spending against its limit.
type Status string

const (
	StatusOverspent   Status = "Overspent"
	StatusOnBudget    Status = "On Budget"
	StatusUnderBudget Status = "Under Budget"
)

// CategoryInsight holds the derived figures for one budgeted category.
// Utilization is capped at 100 for display; Difference carries the
// uncapped signal (spend minus limit) used for classification.
type CategoryInsight struct {
	Category    string  `json:"category"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	Utilization float64 `json:"utilization"`
	Status      Status  `json:"status"`
	Difference  float64 `json:"difference"`
}

// Evaluate computes one insight per budgeted category, in ascending
// category-name order. Spend per category is the sum of amounts over all
// transactions whose category matches exactly; kind is deliberately not
// filtered, so income booked against a budgeted category counts toward it.
// Categories that appear only in transactions are ignored.
func Evaluate(limits models.CategoryLimits, transactions []models.Transaction) []CategoryInsight {
	spentByCategory := make(map[string]float64, len(limits))
	for _, tx := range transactions {
		spentByCategory[tx.Category] += tx.Amount
	}

	categories := make([]string, 0, len(limits))
	for category := range limits {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	result := make([]CategoryInsight, 0, len(categories))
	for _, category := range categories {
		limit := limits[category]
		spent := spentByCategory[category]

		var utilization float64
		if limit != 0 {
			utilization = spent / limit * 100
			if utilization > 100 {
				utilization = 100
			}
		}

		status := StatusUnderBudget
		switch {
		case spent > limit:
			status = StatusOverspent
		case spent == limit:
			status = StatusOnBudget
		}

		result = append(result, CategoryInsight{
			Category:    category,
			Limit:       limit,
			Spent:       spent,
			Utilization: utilization,
			Status:      status,
			Difference:  spent - limit,
		})
	}

	return result
}

// LargestOverspend returns the insight with the greatest positive
// difference among overspent categories, or nil when nothing is overspent.
// Ties resolve to the first such insight in the input order.
func LargestOverspend(insights []CategoryInsight) *CategoryInsight {
	var worst *CategoryInsight
	for i := range insights {
		if insights[i].Difference <= 0 {
			continue
		}
		if worst == nil || insights[i].Difference > worst.Difference {
			worst = &insights[i]
		}
	}
	return worst
}
