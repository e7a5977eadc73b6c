package browse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorekerinci/web/internal/domain/listing"
)

func TestNewLocation(t *testing.T) {
	t.Parallel()

	loc, err := NewLocation("https://explorekerinci.id/wisata?search=air+terjun", nil)
	require.NoError(t, err)

	assert.Equal(t, "/wisata", loc.Path())
	assert.Equal(t, "air terjun", loc.Query().Get(listing.KeySearch))
	assert.Equal(t, "/wisata?search=air+terjun", loc.URL())

	_, err = NewLocation("%zz", nil)
	assert.Error(t, err)
}

func TestLocation_QueryIsACopy(t *testing.T) {
	t.Parallel()

	loc, err := NewLocation("/wisata?search=air", nil)
	require.NoError(t, err)

	q := loc.Query()
	q.Set(listing.KeySearch, "mutated")

	assert.Equal(t, "air", loc.Query().Get(listing.KeySearch))
}

func TestLocation_PushNavigates(t *testing.T) {
	t.Parallel()

	nav := &recorder{}
	loc, err := NewLocation("/wisata?page=2", nav)
	require.NoError(t, err)

	got := loc.Push("/wisata", listing.Params{})

	assert.Equal(t, "/wisata", got)
	assert.Equal(t, []string{"/wisata"}, nav.URLs())
	assert.Equal(t, "/wisata", loc.URL())
}

func TestLocation_ConcurrentRewritesOfDisjointKeys(t *testing.T) {
	t.Parallel()

	loc, err := NewLocation("/wisata", nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c", "d", "e", "f"} {
		wg.Go(func() {
			loc.Rewrite(func(q listing.Params) listing.Params {
				q.Set(key, "1")
				return q
			})
		})
	}
	wg.Wait()

	assert.Equal(t, 6, loc.Query().Len(), "no rewrite may be lost")
}
