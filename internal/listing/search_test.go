package listing

import (
	"context"
	"testing"
	"time"

	"github.com/dmehra2102/menudash/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearch(t *testing.T, b *fakeBackend, refreshOnIdle bool) (*Search[item], *Controller[item], *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	c := newTestController(t, b, memstore.New())
	s := NewSearch(context.Background(), c, time.Second, refreshOnIdle, WithAfterFunc(clock.AfterFunc))
	t.Cleanup(s.Close)
	return s, c, clock
}

func TestSearch_OneFetchPerQuietPeriod(t *testing.T) {
	b := newFakeBackend(5)
	b.add("Cheese burger", "")
	s, c, clock := newTestSearch(t, b, false)

	for _, text := range []string{"b", "bu", "bur", "burg", "burge", "burger"} {
		s.SetQuery(text)
		clock.Advance(100 * time.Millisecond)
	}
	assert.Equal(t, 0, b.callCount())

	clock.Advance(time.Second)

	require.Equal(t, 1, b.callCount())
	q := b.lastQuery()
	assert.Equal(t, "burger", q.FilterText)
	assert.Equal(t, 0, q.Page)
	assert.Equal(t, 8, q.PageSize)
	assert.Equal(t, "search", b.calls[0])

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Cheese burger", snap.Items[0].Name)
}

func TestSearch_TrimsQuery(t *testing.T) {
	b := newFakeBackend(3)
	s, _, clock := newTestSearch(t, b, false)

	s.SetQuery("  item  ")
	clock.Advance(time.Second)

	assert.Equal(t, "item", b.lastQuery().FilterText)
}

func TestSearch_ClearingFilterRefetchesUnfiltered(t *testing.T) {
	b := newFakeBackend(3)
	s, c, clock := newTestSearch(t, b, false)

	s.SetQuery("item 01")
	clock.Advance(time.Second)
	s.SetQuery("   ")
	clock.Advance(time.Second)

	require.Equal(t, 2, b.callCount())
	assert.Equal(t, "list", b.calls[1])
	assert.Len(t, c.Snapshot().Items, 3)
}

func TestSearch_EmptyQueryWithoutFilterIsIdle(t *testing.T) {
	b := newFakeBackend(3)
	s, _, clock := newTestSearch(t, b, false)

	s.SetQuery("")
	clock.Advance(time.Second)

	assert.Equal(t, 0, b.callCount())
}

func TestSearch_RefreshOnIdle(t *testing.T) {
	b := newFakeBackend(3)
	s, _, clock := newTestSearch(t, b, true)

	s.SetQuery("")
	clock.Advance(time.Second)

	require.Equal(t, 1, b.callCount())
	assert.Equal(t, "list", b.calls[0])
}

func TestSearch_SetPageBypassesDebounce(t *testing.T) {
	b := newFakeBackend(3)
	for i := 0; i < 10; i++ {
		b.add("burger", "")
	}
	s, c, clock := newTestSearch(t, b, false)

	s.SetQuery("burger")
	clock.Advance(time.Second)
	require.Equal(t, 1, b.callCount())

	s.SetQuery("burger ")
	require.NoError(t, s.SetPage(context.Background(), 1))

	require.Equal(t, 2, b.callCount())
	q := b.lastQuery()
	assert.Equal(t, "burger", q.FilterText)
	assert.Equal(t, 1, q.Page)
	assert.Len(t, c.Snapshot().Items, 2)

	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, b.callCount())
}

func TestSearch_NextPage(t *testing.T) {
	b := newFakeBackend(0)
	for i := 0; i < 10; i++ {
		b.add("burger", "")
	}
	s, c, clock := newTestSearch(t, b, false)

	s.SetQuery("burger")
	clock.Advance(time.Second)

	require.NoError(t, s.NextPage(context.Background()))
	assert.Equal(t, 1, c.Snapshot().Query.Page)
	require.NoError(t, s.NextPage(context.Background()))
	assert.Equal(t, 1, c.Snapshot().Query.Page)
	require.NoError(t, s.PrevPage(context.Background()))
	assert.Equal(t, 0, c.Snapshot().Query.Page)
	assert.Equal(t, "burger", b.lastQuery().FilterText)
}

func TestSearch_NarrowingOnLaterPageMovesToLastPage(t *testing.T) {
	b := newFakeBackend(20)
	s, c, clock := newTestSearch(t, b, false)
	require.NoError(t, c.SetPage(context.Background(), 2))

	s.SetQuery("item 05")
	clock.Advance(time.Second)

	snap := c.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.Equal(t, 0, snap.Query.Page)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "item 05", snap.Items[0].Name)
	assert.Equal(t, "item 05", b.lastQuery().FilterText)
	assert.Equal(t, 0, b.lastQuery().Page)
}

func TestSearch_NextPageAppliesPendingText(t *testing.T) {
	b := newFakeBackend(20)
	s, c, _ := newTestSearch(t, b, false)
	require.NoError(t, c.Refresh(context.Background()))

	s.SetQuery("item 1")
	require.NoError(t, s.NextPage(context.Background()))

	q := b.lastQuery()
	assert.Equal(t, "item 1", q.FilterText)
	assert.Equal(t, 1, q.Page)
	assert.False(t, s.Pending())
	assert.Len(t, c.Snapshot().Items, 2)
}

func TestSearch_CloseCancelsPending(t *testing.T) {
	b := newFakeBackend(3)
	s, _, clock := newTestSearch(t, b, false)

	s.SetQuery("burger")
	s.Close()
	clock.Advance(2 * time.Second)

	assert.Equal(t, 0, b.callCount())
	assert.Equal(t, 0, clock.active())
	assert.False(t, s.Pending())
}

func TestSearch_KeepsCategoryUnderNameFilter(t *testing.T) {
	b := newFakeBackend(3)
	b.add("burger", "mains")
	s, c, clock := newTestSearch(t, b, false)

	mains := "mains"
	require.NoError(t, c.SetCategory(context.Background(), &mains))
	s.SetQuery("item")
	clock.Advance(time.Second)

	assert.Equal(t, "search", b.calls[len(b.calls)-1])
	assert.Len(t, c.Snapshot().Items, 3)
}
