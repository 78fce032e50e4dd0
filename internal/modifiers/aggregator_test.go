package modifiers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
	mockmodifiers "github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers/mock"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/uuid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intp(v int) *int { return &v }

func grantSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		ID:   "char-1",
		Name: "Test Subject",
		Equipment: []entity.Grant{
			{SourceID: "item.vest", Label: "Blast Vest", Target: "defense.reflex", Type: contribution.TypeEquipment, Value: 2},
			{SourceID: "item.armor", Label: "Battle Armor", Target: "defense.reflex", Type: contribution.TypeEquipment, Value: 4},
			{SourceID: "item.scope", Label: "Scope", Target: "mystery.domain", Value: 1},
		},
		Traits: []entity.Grant{
			{SourceID: "feat.dodge", Label: "Dodge", Target: "defense.reflex", Type: contribution.TypeDodge, Value: 1},
			{SourceID: "feat.toughness", Label: "Toughness", Target: "hp.max", Value: 5},
		},
	}
}

// grantProvider emits every grant carried by the snapshot
func grantProvider(ctx context.Context, snap *entity.Snapshot) ([]contribution.Contribution, error) {
	var out []contribution.Contribution
	for _, group := range snap.GrantGroups() {
		for _, g := range group.Grants {
			out = append(out, g.Contribution(group.Kind))
		}
	}
	return out, nil
}

func newTestAggregator(t *testing.T, catalog modifiers.Catalog) *modifiers.Aggregator {
	t.Helper()

	collector, err := modifiers.NewCollector(&modifiers.CollectorConfig{
		Providers:   []modifiers.NamedProvider{{Name: "grants", Provide: grantProvider}},
		IDGenerator: uuid.NewSequentialGenerator("contrib"),
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	agg, err := modifiers.NewAggregator(&modifiers.AggregatorConfig{
		Collector: collector,
		Catalog:   catalog,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)
	return agg
}

func TestAggregatorConfigValidate(t *testing.T) {
	_, err := modifiers.NewAggregator(&modifiers.AggregatorConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestAggregateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mockmodifiers.NewMockCatalog(ctrl)
	catalog.EXPECT().Domain("defense.reflex").
		Return(modifiers.Domain{Key: "defense.reflex", Rule: modifiers.RuleHighestOnly}, true).AnyTimes()
	catalog.EXPECT().Domain("hp.max").
		Return(modifiers.Domain{Key: "hp.max", Rule: modifiers.RuleStack}, true).AnyTimes()
	catalog.EXPECT().Domain("mystery.domain").
		Return(modifiers.Domain{}, false).AnyTimes()

	agg := newTestAggregator(t, catalog)

	totals, err := agg.AggregateAll(context.Background(), grantSnapshot())
	require.NoError(t, err)

	// Equipment bonuses collapse to the armor; dodge stacks on top.
	// The grant against an undefined domain is skipped entirely.
	assert.Equal(t, map[string]int{
		"defense.reflex": 5,
		"hp.max":         5,
	}, totals)
}

func TestAggregateAllRejectsInvalidSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agg := newTestAggregator(t, mockmodifiers.NewMockCatalog(ctrl))

	_, err := agg.AggregateAll(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = agg.AggregateAll(context.Background(), &entity.Snapshot{})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestAggregateTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mockmodifiers.NewMockCatalog(ctrl)
	catalog.EXPECT().Domain("defense.reflex").
		Return(modifiers.Domain{Key: "defense.reflex", Rule: modifiers.RuleHighestOnly}, true).AnyTimes()
	catalog.EXPECT().Domain(gomock.Any()).Return(modifiers.Domain{}, false).AnyTimes()
	catalog.EXPECT().Keys().Return([]string{"defense.reflex", "hp.max"}).AnyTimes()

	agg := newTestAggregator(t, catalog)

	t.Run("known domain totals", func(t *testing.T) {
		total, err := agg.AggregateTarget(context.Background(), grantSnapshot(), "defense.reflex")
		require.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	t.Run("unknown domain degrades to zero", func(t *testing.T) {
		total, err := agg.AggregateTarget(context.Background(), grantSnapshot(), "defense.wisdom")
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("empty target is a contract violation", func(t *testing.T) {
		_, err := agg.AggregateTarget(context.Background(), grantSnapshot(), "")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mockmodifiers.NewMockCatalog(ctrl)
	catalog.EXPECT().Domain("defense.reflex").
		Return(modifiers.Domain{Key: "defense.reflex", Rule: modifiers.RuleHighestOnly}, true).AnyTimes()
	catalog.EXPECT().Domain("defense.deflection").
		Return(modifiers.Domain{
			Key:  "defense.deflection",
			Rule: modifiers.RuleStack,
			Cap:  &modifiers.Cap{Min: intp(-5), Max: intp(5)},
		}, true).AnyTimes()
	catalog.EXPECT().Domain(gomock.Any()).Return(modifiers.Domain{}, false).AnyTimes()
	catalog.EXPECT().Keys().Return([]string{"defense.reflex", "defense.deflection"}).AnyTimes()

	agg := newTestAggregator(t, catalog)

	t.Run("returns breakdown for survivors", func(t *testing.T) {
		result, err := agg.Detail(context.Background(), grantSnapshot(), "defense.reflex")
		require.NoError(t, err)
		require.NoError(t, result.Err)

		assert.Equal(t, "defense.reflex", result.Target)
		assert.Equal(t, 5, result.Total)
		require.Len(t, result.Applied, 2)
		require.Len(t, result.Breakdown, 2)

		labels := []string{result.Breakdown[0].Label, result.Breakdown[1].Label}
		assert.Contains(t, labels, "Battle Armor")
		assert.Contains(t, labels, "Dodge")
	})

	t.Run("cap clamps the total", func(t *testing.T) {
		snap := &entity.Snapshot{
			ID: "char-2",
			Temporary: []entity.Grant{
				{SourceID: "power.ward-1", Target: "defense.deflection", Value: 4},
				{SourceID: "power.ward-2", Target: "defense.deflection", Value: 4},
			},
		}

		result, err := agg.Detail(context.Background(), snap, "defense.deflection")
		require.NoError(t, err)
		assert.Equal(t, 5, result.Total)
		assert.Len(t, result.Applied, 2)
	})

	t.Run("unknown domain returns soft error with suggestion", func(t *testing.T) {
		result, err := agg.Detail(context.Background(), grantSnapshot(), "defense.reflx")
		require.NoError(t, err)
		require.Error(t, result.Err)

		assert.True(t, errors.IsNotFound(result.Err))
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Applied)
		assert.Contains(t, result.Err.Error(), `did you mean "defense.reflex"`)
	})

	t.Run("distant unknown domain gets no suggestion", func(t *testing.T) {
		result, err := agg.Detail(context.Background(), grantSnapshot(), "zzzzzzzzzzzz")
		require.NoError(t, err)
		require.Error(t, result.Err)
		assert.NotContains(t, result.Err.Error(), "did you mean")
	})
}
