// Package report computes the dashboard and report aggregates as stateless
// projections over a ledger snapshot. Nothing here is materialized: every
// call scans the snapshot it is given.
package report

import (
	"slices"
	"strings"
	"time"

	"invenpro/backend/internal/domain"
)

type Overview struct {
	TotalItems      int   `json:"totalItems"`
	TotalStock      int   `json:"totalStock"`
	LowStockItems   int   `json:"lowStockItems"`
	MonthlySales    int64 `json:"monthlySales"`
	MonthlyIncoming int64 `json:"monthlyIncoming"`
	MonthlyOutgoing int   `json:"monthlyOutgoing"`
}

// BuildOverview aggregates the headline dashboard numbers. "Monthly" figures
// cover the calendar month of now; lowStockItems counts both low and out.
func BuildOverview(items []domain.InventoryItem, txns []domain.Transaction, now time.Time) Overview {
	overview := Overview{TotalItems: len(items)}
	for _, item := range items {
		overview.TotalStock += item.Stock
		if item.Status == domain.StatusLow || item.Status == domain.StatusOut {
			overview.LowStockItems++
		}
	}

	monthPrefix := now.UTC().Format("2006-01")
	for _, txn := range txns {
		if !strings.HasPrefix(txn.Date, monthPrefix) {
			continue
		}
		switch txn.Kind {
		case domain.KindSale:
			overview.MonthlySales += txn.TotalAmount
		case domain.KindIncoming:
			overview.MonthlyIncoming += txn.TotalCost
		case domain.KindOutgoing:
			overview.MonthlyOutgoing += txn.Quantity
		}
	}
	return overview
}

type ProfitSummary struct {
	TotalSales int64 `json:"totalSales"`
	TotalCost  int64 `json:"totalCost"`
	Profit     int64 `json:"profit"`
}

// BuildProfitSummary totals sale revenue against incoming purchase cost over
// the whole ledger.
func BuildProfitSummary(txns []domain.Transaction) ProfitSummary {
	var summary ProfitSummary
	for _, txn := range txns {
		switch txn.Kind {
		case domain.KindSale:
			summary.TotalSales += txn.TotalAmount
		case domain.KindIncoming:
			summary.TotalCost += txn.TotalCost
		}
	}
	summary.Profit = summary.TotalSales - summary.TotalCost
	return summary
}

type CategorySummary struct {
	Category   string `json:"category"`
	ItemCount  int    `json:"itemCount"`
	TotalStock int    `json:"totalStock"`
}

func GroupByCategory(items []domain.InventoryItem) []CategorySummary {
	byName := make(map[string]*CategorySummary)
	for _, item := range items {
		entry := byName[item.Category]
		if entry == nil {
			entry = &CategorySummary{Category: item.Category}
			byName[item.Category] = entry
		}
		entry.ItemCount++
		entry.TotalStock += item.Stock
	}

	result := make([]CategorySummary, 0, len(byName))
	for _, entry := range byName {
		result = append(result, *entry)
	}
	slices.SortFunc(result, func(a, b CategorySummary) int {
		return strings.Compare(a.Category, b.Category)
	})
	return result
}

type SalesPoint struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
}

// SalesSeries returns one point per day for the trailing window ending at
// now, oldest first. Days without sales appear with a zero amount so charts
// stay continuous.
func SalesSeries(txns []domain.Transaction, days int, now time.Time) []SalesPoint {
	if days < 1 {
		days = 7
	}

	byDate := make(map[string]int64)
	for _, txn := range txns {
		if txn.Kind != domain.KindSale {
			continue
		}
		byDate[txn.Date] += txn.TotalAmount
	}

	series := make([]SalesPoint, 0, days)
	start := now.UTC().AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(domain.DateLayout)
		series = append(series, SalesPoint{Date: date, Amount: byDate[date]})
	}
	return series
}
