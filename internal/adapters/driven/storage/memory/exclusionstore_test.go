package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

func TestNewExclusionStore(t *testing.T) {
	store := NewExclusionStore()
	require.NotNil(t, store)
}

func TestExclusionStore_Add(t *testing.T) {
	store := NewExclusionStore()
	ctx := context.Background()

	exclusion := domain.Exclusion{
		ID:         "excl-1",
		RunID:      "run-1",
		Country:    "Atlantis",
		Source:     domain.SourceFirst,
		Reason:     "row contains keyword",
		ExcludedAt: time.Now(),
	}

	err := store.Add(ctx, &exclusion)
	assert.NoError(t, err)

	exclusions, err := store.List(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, exclusions, 1)
	assert.Equal(t, "excl-1", exclusions[0].ID)
}

func TestExclusionStore_Add_Invalid(t *testing.T) {
	store := NewExclusionStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Add(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Add(ctx, &domain.Exclusion{RunID: "r", Country: "Atlantis"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Add(ctx, &domain.Exclusion{ID: "x", Country: "Atlantis"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Add(ctx, &domain.Exclusion{ID: "x", RunID: "r"}), domain.ErrInvalidInput)
}

func TestExclusionStore_Add_DuplicateID(t *testing.T) {
	store := NewExclusionStore()
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, &domain.Exclusion{ID: "x", RunID: "r", Country: "Atlantis"}))

	err := store.Add(ctx, &domain.Exclusion{ID: "x", RunID: "r", Country: "Lemuria"})

	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestExclusionStore_List_Ordered(t *testing.T) {
	store := NewExclusionStore()
	ctx := context.Background()

	_ = store.Add(ctx, &domain.Exclusion{ID: "b", RunID: "r", Country: "Lemuria"})
	_ = store.Add(ctx, &domain.Exclusion{ID: "c", RunID: "r", Country: "Atlantis"})
	_ = store.Add(ctx, &domain.Exclusion{ID: "a", RunID: "r", Country: "Atlantis"})

	list, err := store.List(ctx, "r")

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "c", "b"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestExclusionStore_List_ScopedToRun(t *testing.T) {
	store := NewExclusionStore()
	ctx := context.Background()

	_ = store.Add(ctx, &domain.Exclusion{ID: "1", RunID: "first-run", Country: "Atlantis"})
	_ = store.Add(ctx, &domain.Exclusion{ID: "2", RunID: "second-run", Country: "Lemuria"})

	first, err := store.List(ctx, "first-run")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Atlantis", first[0].Country)

	none, err := store.List(ctx, "third-run")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExclusionStore_ConcurrentAccess(t *testing.T) {
	store := NewExclusionStore()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Add(ctx, &domain.Exclusion{ID: fmt.Sprintf("excl-%d", n), RunID: "r", Country: "Atlantis"})
			_, _ = store.List(ctx, "r")
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx, "r")
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
