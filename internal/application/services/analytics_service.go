package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// NumericStats summarizes the numeric responses of a number field
type NumericStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// FieldStat aggregates the responses collected for one field definition
type FieldStat struct {
	FieldKey       string         `json:"field_key"`
	FieldLabel     string         `json:"field_label"`
	FieldType      string         `json:"field_type"`
	TotalResponses int            `json:"total_responses"`
	ValueCounts    map[string]int `json:"value_counts"`
	NumericStats   *NumericStats  `json:"numeric_stats"`
}

// FieldStatsReport is one snapshot of the analytics rollup
type FieldStatsReport struct {
	TotalPeople int         `json:"total_people"`
	FieldStats  []FieldStat `json:"field_stats"`
	GeneratedAt time.Time   `json:"generated_at"`
}

const analyticsRefreshTimeout = 30 * time.Second

// AnalyticsService computes field statistics over people's custom data and
// caches the last snapshot.
type AnalyticsService struct {
	uow ports.UnitOfWork

	mu     sync.RWMutex
	cached *FieldStatsReport

	cron *cron.Cron
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(uow ports.UnitOfWork) *AnalyticsService {
	return &AnalyticsService{uow: uow}
}

// FieldStats computes the statistics from current data. With useSnapshot set,
// the last scheduled snapshot is returned instead when one exists.
func (s *AnalyticsService) FieldStats(ctx context.Context, useSnapshot bool) (*FieldStatsReport, error) {
	if useSnapshot {
		if snapshot := s.Snapshot(); snapshot != nil {
			return snapshot, nil
		}
	}
	return s.Refresh(ctx)
}

// Snapshot returns the last computed report, or nil before the first one
func (s *AnalyticsService) Snapshot() *FieldStatsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

// Refresh recomputes the snapshot and replaces the cache
func (s *AnalyticsService) Refresh(ctx context.Context) (*FieldStatsReport, error) {
	repos := s.uow.Repositories()

	fields, err := repos.Fields.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}
	people, err := repos.People.List(ctx)
	if err != nil {
		return nil, err
	}

	report := ComputeFieldStats(fields, people)
	report.GeneratedAt = time.Now().UTC()

	s.mu.Lock()
	s.cached = report
	s.mu.Unlock()
	return report, nil
}

// StartScheduler refreshes the snapshot on a standard five-field cron schedule
func (s *AnalyticsService) StartScheduler(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsRefreshTimeout)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			log.Printf("⚠️  Analytics refresh failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid analytics refresh schedule %q: %w", spec, err)
	}

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()

	c.Start()
	log.Printf("⏰ Analytics refresh scheduled (%s)", spec)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish
func (s *AnalyticsService) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// ComputeFieldStats aggregates people's custom data per active field.
// Null and empty-string responses are not counted.
func ComputeFieldStats(fields []*models.FieldDefinition, people []*models.Person) *FieldStatsReport {
	report := &FieldStatsReport{
		TotalPeople: len(people),
		FieldStats:  make([]FieldStat, 0, len(fields)),
	}

	for _, field := range fields {
		stat := FieldStat{
			FieldKey:    field.KeyName,
			FieldLabel:  field.Label,
			FieldType:   field.FieldType,
			ValueCounts: map[string]int{},
		}

		values := make([]any, 0, len(people))
		for _, person := range people {
			value, ok := person.CustomData[field.KeyName]
			if !ok || value == nil || value == "" {
				continue
			}
			values = append(values, value)
		}
		stat.TotalResponses = len(values)

		switch field.FieldType {
		case constants.FieldTypeSelect, constants.FieldTypeRadio, constants.FieldTypeCheckbox:
			for _, value := range values {
				stat.ValueCounts[valueKey(value)]++
			}
		case constants.FieldTypeMultiSelect:
			for _, value := range values {
				items, ok := value.([]any)
				if !ok {
					continue
				}
				for _, item := range items {
					stat.ValueCounts[valueKey(item)]++
				}
			}
		case constants.FieldTypeNumber:
			stat.NumericStats = numericStats(values)
		}

		report.FieldStats = append(report.FieldStats, stat)
	}
	return report
}

// valueKey renders a response as a count key; booleans read True/False
func valueKey(value any) string {
	if b, ok := value.(bool); ok {
		if b {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(value)
}

func numericStats(values []any) *NumericStats {
	var stats *NumericStats
	var sum float64
	for _, value := range values {
		n, ok := toFloat(value)
		if !ok {
			continue
		}
		if stats == nil {
			stats = &NumericStats{Min: n, Max: n}
		}
		if n < stats.Min {
			stats.Min = n
		}
		if n > stats.Max {
			stats.Max = n
		}
		sum += n
		stats.Count++
	}
	if stats != nil {
		stats.Avg = sum / float64(stats.Count)
	}
	return stats
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	}
	return 0, false
}
