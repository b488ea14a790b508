package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

func TestComputeFieldStats(t *testing.T) {
	fields := []*models.FieldDefinition{
		{KeyName: "color", Label: "Color", FieldType: constants.FieldTypeSelect},
		{KeyName: "tags", Label: "Tags", FieldType: constants.FieldTypeMultiSelect},
		{KeyName: "age", Label: "Age", FieldType: constants.FieldTypeNumber},
		{KeyName: "bio", Label: "Bio", FieldType: constants.FieldTypeText},
		{KeyName: "weight", Label: "Weight", FieldType: constants.FieldTypeNumber},
	}
	people := []*models.Person{
		{CustomData: map[string]any{"color": "red", "tags": []any{"a", "b"}, "age": float64(20), "bio": "hi"}},
		{CustomData: map[string]any{"color": "red", "tags": []any{"b"}, "age": "40", "bio": ""}},
		{CustomData: map[string]any{"color": nil, "tags": "not-a-list", "age": "n/a"}},
		{CustomData: map[string]any{}},
	}

	got := ComputeFieldStats(fields, people)

	want := &FieldStatsReport{
		TotalPeople: 4,
		FieldStats: []FieldStat{
			{FieldKey: "color", FieldLabel: "Color", FieldType: constants.FieldTypeSelect, TotalResponses: 2, ValueCounts: map[string]int{"red": 2}},
			{FieldKey: "tags", FieldLabel: "Tags", FieldType: constants.FieldTypeMultiSelect, TotalResponses: 3, ValueCounts: map[string]int{"a": 1, "b": 2}},
			{FieldKey: "age", FieldLabel: "Age", FieldType: constants.FieldTypeNumber, TotalResponses: 3, ValueCounts: map[string]int{},
				NumericStats: &NumericStats{Min: 20, Max: 40, Avg: 30, Count: 2}},
			{FieldKey: "bio", FieldLabel: "Bio", FieldType: constants.FieldTypeText, TotalResponses: 1, ValueCounts: map[string]int{}},
			{FieldKey: "weight", FieldLabel: "Weight", FieldType: constants.FieldTypeNumber, TotalResponses: 0, ValueCounts: map[string]int{}},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(FieldStatsReport{}, "GeneratedAt")); diff != "" {
		t.Errorf("ComputeFieldStats mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeFieldStats_Booleans(t *testing.T) {
	fields := []*models.FieldDefinition{
		{KeyName: "agree", Label: "Agree", FieldType: constants.FieldTypeCheckbox},
		{KeyName: "score", Label: "Score", FieldType: constants.FieldTypeNumber},
	}
	people := []*models.Person{
		{CustomData: map[string]any{"agree": true, "score": true}},
		{CustomData: map[string]any{"agree": false, "score": false}},
		{CustomData: map[string]any{"agree": true, "score": float64(2)}},
	}

	got := ComputeFieldStats(fields, people)

	require.Len(t, got.FieldStats, 2)
	assert.Equal(t, map[string]int{"True": 2, "False": 1}, got.FieldStats[0].ValueCounts)
	assert.Equal(t, 3, got.FieldStats[0].TotalResponses)
	assert.Equal(t, &NumericStats{Min: 0, Max: 2, Avg: 1, Count: 3}, got.FieldStats[1].NumericStats)
}

func TestAnalyticsService_FieldStatsReflectsNewPeople(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	createField(t, sm, "color", constants.FieldTypeSelect, "red", "blue")

	_, err := sm.People.Create(ctx, CreatePersonRequest{Name: "A", Email: "a@example.com", CustomData: map[string]any{"color": "red"}})
	require.NoError(t, err)

	first, err := sm.Analytics.FieldStats(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalPeople)

	_, err = sm.People.Create(ctx, CreatePersonRequest{Name: "B", Email: "b@example.com", CustomData: map[string]any{"color": "blue"}})
	require.NoError(t, err)

	second, err := sm.Analytics.FieldStats(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, second.TotalPeople)
	assert.Equal(t, map[string]int{"red": 1, "blue": 1}, second.FieldStats[0].ValueCounts)
}

func TestAnalyticsService_SnapshotOnRequest(t *testing.T) {
	ctx := context.Background()
	sm := newManager(t)
	createField(t, sm, "color", constants.FieldTypeSelect, "red", "blue")
	assert.Nil(t, sm.Analytics.Snapshot())

	// no snapshot yet, so the first request computes one
	snapshot, err := sm.Analytics.FieldStats(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalPeople)
	assert.Same(t, snapshot, sm.Analytics.Snapshot())

	_, err = sm.People.Create(ctx, CreatePersonRequest{Name: "A", Email: "a@example.com", CustomData: map[string]any{"color": "red"}})
	require.NoError(t, err)

	cached, err := sm.Analytics.FieldStats(ctx, true)
	require.NoError(t, err)
	assert.Same(t, snapshot, cached)

	refreshed, err := sm.Analytics.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.TotalPeople)
	assert.Same(t, refreshed, sm.Analytics.Snapshot())
}

func TestAnalyticsService_Scheduler(t *testing.T) {
	sm := newManager(t)
	assert.Error(t, sm.Analytics.StartScheduler("not a schedule"))

	require.NoError(t, sm.Analytics.StartScheduler("@every 1h"))
	sm.Analytics.Stop()
	sm.Analytics.Stop()
}
