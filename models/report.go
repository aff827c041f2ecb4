package models

import "time"

// TimeFrame is the bucketing granularity for a report.
type TimeFrame string

const (
	TimeFrameDaily   TimeFrame = "daily"
	TimeFrameWeekly  TimeFrame = "weekly"
	TimeFrameMonthly TimeFrame = "monthly"
	TimeFrameYearly  TimeFrame = "yearly"
)

func (f TimeFrame) IsValid() bool {
	switch f {
	case TimeFrameDaily, TimeFrameWeekly, TimeFrameMonthly, TimeFrameYearly:
		return true
	}
	return false
}

// SalesDataPoint is one bucket in a sales report series.
type SalesDataPoint struct {
	Date        time.Time `json:"date"`
	OrdersCount int       `json:"orders_count"`
	ItemsSold   int       `json:"items_sold"`
}

// SalesReport is a derived, request-scoped view; never persisted.
type SalesReport struct {
	TimeFrame      TimeFrame        `json:"time_frame"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	TotalOrders    int              `json:"total_orders"`
	TotalItemsSold int              `json:"total_items_sold"`
	Data           []SalesDataPoint `json:"data"`
}

// RevenueDataPoint is one bucket in a revenue report series.
type RevenueDataPoint struct {
	Date      time.Time `json:"date"`
	Revenue   float64   `json:"revenue"`
	Tax       float64   `json:"tax"`
	Discount  float64   `json:"discount"`
	NetAmount float64   `json:"net_amount"`
}

// RevenueReport is a derived, request-scoped view; never persisted.
type RevenueReport struct {
	TimeFrame      TimeFrame          `json:"time_frame"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	TotalRevenue   float64            `json:"total_revenue"`
	TotalTax       float64            `json:"total_tax"`
	TotalDiscount  float64            `json:"total_discount"`
	TotalNetAmount float64            `json:"total_net_amount"`
	Data           []RevenueDataPoint `json:"data"`
}
