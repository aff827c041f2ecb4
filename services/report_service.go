package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
)

// isStoreUnavailable reports whether err is a connectivity failure, as
// opposed to a decode or programming error that must not be masked.
func isStoreUnavailable(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}

type ReportService struct {
	orders repository.OrderRepo
}

func NewReportService(orders repository.OrderRepo) *ReportService {
	return &ReportService{orders: orders}
}

// resolveDateRange derives the effective window. When endDate is zero it is
// computed from the time frame: daily keeps the same day, weekly runs through
// Sunday of the ISO week, monthly through the last calendar day, yearly
// through Dec 31. A supplied endDate is used verbatim.
func resolveDateRange(timeFrame models.TimeFrame, startDate, endDate time.Time) (time.Time, time.Time) {
	if !endDate.IsZero() {
		return startDate, endDate
	}

	switch timeFrame {
	case models.TimeFrameWeekly:
		// Monday=1 .. Sunday=7
		weekday := int(startDate.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return startDate, startDate.AddDate(0, 0, 7-weekday)
	case models.TimeFrameMonthly:
		// day 0 of the next month normalizes to the last day of this one
		lastDay := time.Date(startDate.Year(), startDate.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		return startDate, lastDay
	case models.TimeFrameYearly:
		return startDate, time.Date(startDate.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return startDate, startDate
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GenerateSalesReport buckets the tenant's orders in the window into a
// sales-count series. Daily series densely cover every day including empty
// ones; weekly, monthly and yearly series only contain periods with activity.
// If the store is unreachable the report degrades to all zeros.
func (s *ReportService) GenerateSalesReport(ctx context.Context, userID string, timeFrame models.TimeFrame, startDate, endDate time.Time) (*models.SalesReport, error) {
	start, end := resolveDateRange(timeFrame, startDate, endDate)

	report := &models.SalesReport{
		TimeFrame: timeFrame,
		StartDate: start,
		EndDate:   end,
		Data:      []models.SalesDataPoint{},
	}

	orders, err := s.orders.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		if !isStoreUnavailable(err) {
			return nil, err
		}
		zap.L().Warn("Sales report degraded to zero values, store unreachable", zap.Error(err))
		return report, nil
	}

	report.TotalOrders = len(orders)
	for i := range orders {
		report.TotalItemsSold += orders[i].ItemsSold()
	}

	switch timeFrame {
	case models.TimeFrameDaily:
		for day := truncateToDay(start); !day.After(truncateToDay(end)); day = day.AddDate(0, 0, 1) {
			point := models.SalesDataPoint{Date: day}
			for i := range orders {
				if truncateToDay(orders[i].CreatedAt).Equal(day) {
					point.OrdersCount++
					point.ItemsSold += orders[i].ItemsSold()
				}
			}
			report.Data = append(report.Data, point)
		}

	default:
		buckets := map[string]*models.SalesDataPoint{}
		for i := range orders {
			key, date := bucketFor(timeFrame, orders[i].CreatedAt)
			point, ok := buckets[key]
			if !ok {
				point = &models.SalesDataPoint{Date: date}
				buckets[key] = point
			} else if date.Before(point.Date) {
				point.Date = date
			}
			point.OrdersCount++
			point.ItemsSold += orders[i].ItemsSold()
		}
		for _, point := range buckets {
			report.Data = append(report.Data, *point)
		}
		sort.Slice(report.Data, func(i, j int) bool {
			return report.Data[i].Date.Before(report.Data[j].Date)
		})
	}

	return report, nil
}

// GenerateRevenueReport is the revenue counterpart of GenerateSalesReport,
// aggregating subtotal, tax, discount and total per bucket.
func (s *ReportService) GenerateRevenueReport(ctx context.Context, userID string, timeFrame models.TimeFrame, startDate, endDate time.Time) (*models.RevenueReport, error) {
	start, end := resolveDateRange(timeFrame, startDate, endDate)

	report := &models.RevenueReport{
		TimeFrame: timeFrame,
		StartDate: start,
		EndDate:   end,
		Data:      []models.RevenueDataPoint{},
	}

	orders, err := s.orders.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		if !isStoreUnavailable(err) {
			return nil, err
		}
		zap.L().Warn("Revenue report degraded to zero values, store unreachable", zap.Error(err))
		return report, nil
	}

	for i := range orders {
		report.TotalRevenue += orders[i].Subtotal
		report.TotalTax += orders[i].Tax
		report.TotalDiscount += orders[i].Discount
		report.TotalNetAmount += orders[i].Total
	}

	switch timeFrame {
	case models.TimeFrameDaily:
		for day := truncateToDay(start); !day.After(truncateToDay(end)); day = day.AddDate(0, 0, 1) {
			point := models.RevenueDataPoint{Date: day}
			for i := range orders {
				if truncateToDay(orders[i].CreatedAt).Equal(day) {
					point.Revenue += orders[i].Subtotal
					point.Tax += orders[i].Tax
					point.Discount += orders[i].Discount
					point.NetAmount += orders[i].Total
				}
			}
			report.Data = append(report.Data, point)
		}

	default:
		buckets := map[string]*models.RevenueDataPoint{}
		for i := range orders {
			key, date := bucketFor(timeFrame, orders[i].CreatedAt)
			point, ok := buckets[key]
			if !ok {
				point = &models.RevenueDataPoint{Date: date}
				buckets[key] = point
			} else if date.Before(point.Date) {
				point.Date = date
			}
			point.Revenue += orders[i].Subtotal
			point.Tax += orders[i].Tax
			point.Discount += orders[i].Discount
			point.NetAmount += orders[i].Total
		}
		for _, point := range buckets {
			report.Data = append(report.Data, *point)
		}
		sort.Slice(report.Data, func(i, j int) bool {
			return report.Data[i].Date.Before(report.Data[j].Date)
		})
	}

	return report, nil
}

// bucketFor returns the grouping key and bucket date for an order's creation
// time. Weekly buckets group by ISO (year, week) and are labeled with the
// earliest represented order date truncated to midnight; monthly buckets with
// the first of the month, yearly with Jan 1.
func bucketFor(timeFrame models.TimeFrame, createdAt time.Time) (string, time.Time) {
	switch timeFrame {
	case models.TimeFrameWeekly:
		year, week := createdAt.ISOWeek()
		return fmt.Sprintf("%d-%d", year, week), truncateToDay(createdAt)
	case models.TimeFrameMonthly:
		return createdAt.Format("2006-01"), time.Date(createdAt.Year(), createdAt.Month(), 1, 0, 0, 0, 0, time.UTC)
	default: // yearly
		return createdAt.Format("2006"), time.Date(createdAt.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}
