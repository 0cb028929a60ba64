package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// Counter keys live 90 days; the dashboard only ever asks for a window
// inside that.
const usageKeyTTL = 90 * 24 * time.Hour

// UsageService records and reports per-day usage counters.
type UsageService interface {
	// Record increments a metric for today. Best-effort; failures are
	// logged, never surfaced.
	Record(metric string)
	// GetStats returns the per-day series and totals for the last `days`
	// civil days, most recent last.
	GetStats(days int) (*models.UsageStats, error)
}

// DefaultUsageService keeps counters in Redis under
// "usage:<metric>:<YYYY-MM-DD>".
type DefaultUsageService struct {
	Cache *redis.Client

	// Now is the clock used to bucket counters, overridable in tests.
	Now func() time.Time
}

func usageKey(metric, date string) string {
	return fmt.Sprintf("usage:%s:%s", metric, date)
}

func (s *DefaultUsageService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Record increments a metric for today.
func (s *DefaultUsageService) Record(metric string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := usageKey(metric, s.now().Format("2006-01-02"))
	pipe := s.Cache.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, usageKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		utils.GetLogger().Warn("usage counter increment failed",
			zap.String("metric", metric), zap.Error(err))
	}
}

// GetStats returns the per-day series and totals for the last `days` days.
func (s *DefaultUsageService) GetStats(days int) (*models.UsageStats, error) {
	if days <= 0 {
		days = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := []string{
		models.MetricBookings,
		models.MetricCancellations,
		models.MetricAvailabilityChecks,
		models.MetricChatRequests,
	}

	stats := &models.UsageStats{
		Days:   make([]models.UsageDay, 0, days),
		Totals: make(map[string]int64, len(metrics)),
	}

	today := s.now()
	for offset := days - 1; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format("2006-01-02")
		day := models.UsageDay{Date: date, Counts: make(map[string]int64, len(metrics))}

		for _, metric := range metrics {
			n, err := s.Cache.Get(ctx, usageKey(metric, date)).Int64()
			if err != nil && err != redis.Nil {
				return nil, fmt.Errorf("failed to read usage counter %s/%s: %w", metric, date, err)
			}
			day.Counts[metric] = n
			stats.Totals[metric] += n
		}
		stats.Days = append(stats.Days, day)
	}

	return stats, nil
}
