package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
)

func TestStore(t *testing.T) {
	rq := require.New(t)

	store := catalog.NewStore()
	rq.True(store.LoadedAt().IsZero())
	rq.Zero(store.Len())

	a, b := deal("A", "1", "10"), deal("B", "2", "20")
	input := []entity.Deal{a, b}

	store.Replace(input)
	input[0].Title = "changed"

	rq.False(store.LoadedAt().IsZero())
	rq.Equal(2, store.Len())
	rq.Equal([]string{"A", "B"}, titles(store.All()))

	got, ok := store.Get(b.ID)
	rq.True(ok)
	rq.Equal(b, got)

	b.Genres = []string{"Action"}
	rq.True(store.Update(b))

	got, _ = store.Get(b.ID)
	rq.Equal([]string{"Action"}, got.Genres)
	rq.Equal([]string{"A", "B"}, titles(store.All()))

	store.Replace([]entity.Deal{deal("C", "3", "30")})

	_, ok = store.Get(a.ID)
	rq.False(ok)
	rq.False(store.Update(a))
	rq.Equal([]string{"C"}, titles(store.All()))
}

func TestStoreSnapshotIsolation(t *testing.T) {
	rq := require.New(t)

	store := catalog.NewStore()
	store.Replace([]entity.Deal{deal("A", "1", "10")})

	snapshot := store.All()
	snapshot[0].Title = "changed"

	rq.Equal([]string{"A"}, titles(store.All()))
}
