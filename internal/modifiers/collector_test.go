package modifiers

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staticProvider(name string, contribs ...contribution.Contribution) NamedProvider {
	return NamedProvider{
		Name: name,
		Provide: func(ctx context.Context, snap *entity.Snapshot) ([]contribution.Contribution, error) {
			return contribs, nil
		},
	}
}

func newTestCollector(t *testing.T, providers ...NamedProvider) *Collector {
	t.Helper()
	c, err := NewCollector(&CollectorConfig{
		Providers:   providers,
		IDGenerator: uuid.NewSequentialGenerator("contrib"),
		Logger:      testLogger(),
	})
	require.NoError(t, err)
	return c
}

func TestCollectorConfigValidate(t *testing.T) {
	t.Run("nil config rejected", func(t *testing.T) {
		var cfg *CollectorConfig
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})

	t.Run("missing id generator rejected", func(t *testing.T) {
		cfg := &CollectorConfig{}
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})

	t.Run("unnamed provider rejected", func(t *testing.T) {
		cfg := &CollectorConfig{
			IDGenerator: uuid.NewSequentialGenerator("c"),
			Providers:   []NamedProvider{{Provide: func(context.Context, *entity.Snapshot) ([]contribution.Contribution, error) { return nil, nil }}},
		}
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})

	t.Run("provider without function rejected", func(t *testing.T) {
		cfg := &CollectorConfig{
			IDGenerator: uuid.NewSequentialGenerator("c"),
			Providers:   []NamedProvider{{Name: "empty"}},
		}
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})

	t.Run("no providers is legal", func(t *testing.T) {
		cfg := &CollectorConfig{IDGenerator: uuid.NewSequentialGenerator("c")}
		require.NoError(t, cfg.Validate())
	})
}

func TestCollectorCollect(t *testing.T) {
	snap := &entity.Snapshot{ID: "char-1"}

	t.Run("merges providers in registration order", func(t *testing.T) {
		c := newTestCollector(t,
			staticProvider("traits", contrib("t1", "feat.dodge", contribution.TypeDodge, 1)),
			staticProvider("equipment", contrib("e1", "item.vest", contribution.TypeEquipment, 2)),
		)

		collected, err := c.Collect(context.Background(), snap)
		require.NoError(t, err)
		require.Len(t, collected, 2)
		assert.Equal(t, "t1", collected[0].ID)
		assert.Equal(t, "e1", collected[1].ID)
	})

	t.Run("failing provider contributes nothing", func(t *testing.T) {
		c := newTestCollector(t,
			NamedProvider{
				Name: "broken",
				Provide: func(context.Context, *entity.Snapshot) ([]contribution.Contribution, error) {
					return nil, errors.Internal("datafile corrupt")
				},
			},
			staticProvider("equipment", contrib("e1", "item.vest", contribution.TypeEquipment, 2)),
		)

		collected, err := c.Collect(context.Background(), snap)
		require.NoError(t, err)
		require.Len(t, collected, 1)
		assert.Equal(t, "e1", collected[0].ID)
	})

	t.Run("panicking provider contributes nothing", func(t *testing.T) {
		c := newTestCollector(t,
			NamedProvider{
				Name: "explosive",
				Provide: func(context.Context, *entity.Snapshot) ([]contribution.Contribution, error) {
					panic("nil dereference in host code")
				},
			},
			staticProvider("traits", contrib("t1", "feat.dodge", contribution.TypeDodge, 1)),
		)

		collected, err := c.Collect(context.Background(), snap)
		require.NoError(t, err)
		require.Len(t, collected, 1)
		assert.Equal(t, "t1", collected[0].ID)
	})

	t.Run("slow provider is cut off at the provider timeout", func(t *testing.T) {
		slow := NamedProvider{
			Name: "sluggish",
			Provide: func(ctx context.Context, _ *entity.Snapshot) ([]contribution.Contribution, error) {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return []contribution.Contribution{contrib("late", "src", contribution.TypeUntyped, 1)}, nil
				}
			},
		}

		c, err := NewCollector(&CollectorConfig{
			Providers: []NamedProvider{
				slow,
				staticProvider("equipment", contrib("e1", "item.vest", contribution.TypeEquipment, 2)),
			},
			IDGenerator:     uuid.NewSequentialGenerator("contrib"),
			ProviderTimeout: 20 * time.Millisecond,
			Logger:          testLogger(),
		})
		require.NoError(t, err)

		collected, err := c.Collect(context.Background(), snap)
		require.NoError(t, err)
		require.Len(t, collected, 1)
		assert.Equal(t, "e1", collected[0].ID)
	})

	t.Run("stamps missing ids and keeps provided ones", func(t *testing.T) {
		anonymous := contrib("", "feat.dodge", contribution.TypeDodge, 1)
		c := newTestCollector(t,
			staticProvider("traits", anonymous),
			staticProvider("equipment", contrib("keep-me", "item.vest", contribution.TypeEquipment, 2)),
		)

		collected, err := c.Collect(context.Background(), snap)
		require.NoError(t, err)
		require.Len(t, collected, 2)
		assert.Equal(t, "contrib-1", collected[0].ID)
		assert.Equal(t, "keep-me", collected[1].ID)
	})

	t.Run("drops malformed contributions", func(t *testing.T) {
		noTarget := contribution.Contribution{
			SourceKind: contribution.SourceTrait,
			SourceID:   "feat.broken",
			Type:       contribution.TypeUntyped,
			Value:      3,
			Enabled:    true,
		}
		c := newTestCollector(t,
			staticProvider("traits", noTarget, contrib("ok", "feat.dodge", contribution.TypeDodge, 1)),
		)

		collected, err := c.Collect(context.Background(), snap)
		require.NoError(t, err)
		require.Len(t, collected, 1)
		assert.Equal(t, "ok", collected[0].ID)
	})

	t.Run("nil snapshot is a contract violation", func(t *testing.T) {
		c := newTestCollector(t)
		_, err := c.Collect(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
