// Package analytics derives trend series and stock metrics from current stock
// levels. No history is stored; every series is synthesized at request time.
package analytics

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// Window is the number of days covered by every trend series, today included.
const Window = 30

const dateLayout = "2006-01-02"

type TrendPoint struct {
	Date  string `json:"date"`
	Stock int    `json:"stock"`
}

// Percent is a change percentage that may be undefined. Undefined values
// marshal to the string "N/A" instead of a number.
type Percent struct {
	Value float64
	Valid bool
}

const notApplicable = "N/A"

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return json.Marshal(notApplicable)
	}
	return json.Marshal(p.Value)
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Percent{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Percent{Value: v, Valid: true}
	return nil
}

type ProductMetrics struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	CurrentStock  int     `json:"currentStock"`
	MinStock      int     `json:"minStock"`
	MaxStock      int     `json:"maxStock"`
	ChangeAmount  int     `json:"changeAmount"`
	ChangePercent Percent `json:"changePercent"`
}

// dates returns the Window calendar days ending on today's UTC date.
func dates(today time.Time) []string {
	day := today.UTC()
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]string, Window)
	for i := 0; i < Window; i++ {
		out[i] = day.AddDate(0, 0, i-(Window-1)).Format(dateLayout)
	}
	return out
}

// InventoryTrend reports the current total stock for each of the last Window days.
// The line is flat because no history is kept.
func InventoryTrend(products []models.Product, today time.Time) []TrendPoint {
	total := 0
	for _, p := range products {
		total += p.StockLevel
	}

	points := make([]TrendPoint, Window)
	for i, d := range dates(today) {
		points[i] = TrendPoint{Date: d, Stock: total}
	}
	return points
}

// ProductSeries ramps up to stock by one unit per day, floored at zero.
// Index 0 is Window-1 days ago and the last index is today.
func ProductSeries(stock int) []int {
	series := make([]int, Window)
	for i := 0; i < Window; i++ {
		series[i] = max(stock-(Window-1-i), 0)
	}
	return series
}

func ProductTrend(p models.Product, today time.Time) []TrendPoint {
	series := ProductSeries(p.StockLevel)
	points := make([]TrendPoint, Window)
	for i, d := range dates(today) {
		points[i] = TrendPoint{Date: d, Stock: series[i]}
	}
	return points
}

func Metrics(products []models.Product) []ProductMetrics {
	out := make([]ProductMetrics, 0, len(products))
	for _, p := range products {
		series := ProductSeries(p.StockLevel)
		first, current := series[0], series[Window-1]

		m := ProductMetrics{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			CurrentStock: current,
			MinStock:     series[0],
			MaxStock:     series[0],
			ChangeAmount: current - first,
		}
		for _, v := range series[1:] {
			m.MinStock = min(m.MinStock, v)
			m.MaxStock = max(m.MaxStock, v)
		}
		if first > 0 {
			m.ChangePercent = Percent{Value: roundTo(float64(m.ChangeAmount)/float64(first)*100, 1), Valid: true}
		}
		out = append(out, m)
	}
	return out
}

// roundTo rounds half to even on the exact binary value, as Python's round does.
func roundTo(v float64, places int) float64 {
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return out
}
