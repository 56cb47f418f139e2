package analytics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Repository answers aggregate queries over committed reservations
type Repository interface {
	GetOverview(ctx context.Context) (*Overview, error)
	GetVenuePerformance(ctx context.Context, limit int) ([]VenuePerformance, error)
	GetDailyStats(ctx context.Context, days int) ([]DailyStats, error)
	GetServicePopularity(ctx context.Context, limit int) ([]ServicePopularity, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a Postgres-backed analytics repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	overview.ByStatus = make(map[string]int)
	for _, sc := range statusCounts {
		overview.ByStatus[sc.Status] = sc.Count
		overview.TotalReservations += sc.Count

		switch sc.Status {
		case "PENDING":
			overview.PendingApprovals = sc.Count
		case "CONFIRMED":
			overview.ConfirmedReservations = sc.Count
		case "CANCELLED":
			overview.CancelledReservations = sc.Count
		}
	}

	// Revenue counts active bookings only; cancelled money never materialized
	err = r.db.WithContext(ctx).
		Table("reservations").
		Where("status IN ?", []string{"PENDING", "CONFIRMED"}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&overview.TotalRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to calculate total revenue: %w", err)
	}

	active := overview.PendingApprovals + overview.ConfirmedReservations
	if active > 0 {
		overview.AverageValue = overview.TotalRevenue / int64(active)
	}
	if overview.TotalReservations > 0 {
		overview.CancellationRate = float64(overview.CancelledReservations) / float64(overview.TotalReservations) * 100
	}

	return &overview, nil
}

func (r *repository) GetVenuePerformance(ctx context.Context, limit int) ([]VenuePerformance, error) {
	var performances []VenuePerformance

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			venue_id,
			venue_name,
			COUNT(*) as reservation_count,
			COALESCE(SUM(total_cost), 0) as revenue,
			AVG(duration_hours) as avg_duration_hours
		FROM reservations
		WHERE status IN ('PENDING', 'CONFIRMED')
		GROUP BY venue_id, venue_name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&performances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get venue performance: %w", err)
	}

	return performances, nil
}

func (r *repository) GetDailyStats(ctx context.Context, days int) ([]DailyStats, error) {
	var stats []DailyStats

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE(created_at), 'YYYY-MM-DD') as date,
			COUNT(*) as reservations,
			COALESCE(SUM(CASE WHEN status IN ('PENDING', 'CONFIRMED') THEN total_cost ELSE 0 END), 0) as revenue
		FROM reservations
		WHERE created_at >= ?
		GROUP BY DATE(created_at)
		ORDER BY date
	`, time.Now().AddDate(0, 0, -days)).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	return stats, nil
}

func (r *repository) GetServicePopularity(ctx context.Context, limit int) ([]ServicePopularity, error) {
	var services []ServicePopularity

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			rs.name,
			rs.category,
			COUNT(*) as times_booked,
			COALESCE(SUM(rs.cost), 0) as revenue
		FROM reservation_services rs
		JOIN reservations r ON r.id = rs.reservation_id
		WHERE r.status IN ('PENDING', 'CONFIRMED')
		GROUP BY rs.name, rs.category
		ORDER BY times_booked DESC, revenue DESC
		LIMIT ?
	`, limit).Scan(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get service popularity: %w", err)
	}

	return services, nil
}
