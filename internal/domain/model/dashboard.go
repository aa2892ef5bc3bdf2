package model

// Dashboard holds the metric cards and chart series for the admin dashboard.
type Dashboard struct {
	TotalRevenue   float64          `json:"totalRevenue"`
	NewCustomers   int              `json:"newCustomers"`
	ActiveAccounts int              `json:"activeAccounts"`
	GrowthRate     float64          `json:"growthRate"`
	BarChartData   []ChartDataPoint `json:"barChartData"`
	AreaChartData  []AreaChartPoint `json:"areaChartData"`
	DonutChartData []ChartDataPoint `json:"donutChartData"`
	RecentSales    []RecentSale     `json:"recentSales"`
}

// ChartDataPoint is a labelled value ("Apr 8" → sales, "ordered" → count).
type ChartDataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AreaChartPoint is the monthly total and completed order counts.
type AreaChartPoint struct {
	Month           string `json:"month"`
	TotalOrders     int    `json:"totalOrders"`
	CompletedOrders int    `json:"completedOrders"`
}

// RecentSale is a row of the recent sales list. Amount is preformatted.
type RecentSale struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Amount string `json:"amount"`
	Avatar string `json:"avatar"`
}

// DonutTotal sums the donut series.
func (d Dashboard) DonutTotal() float64 {
	var total float64
	for _, p := range d.DonutChartData {
		total += p.Value
	}
	return total
}
