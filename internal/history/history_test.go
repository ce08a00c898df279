package history

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleFeed = `{
	"selected": [{"text": "A selected event.", "year": 1900}],
	"events": [
		{"text": "Something happened.", "year": 1969, "pages": [
			{"title": "Moon landing", "extract": "An extract.", "thumbnail": {"source": "https://example.com/t.jpg"}}
		]}
	],
	"births": [{"text": "Someone was born.", "year": 1920}]
}`

func TestOnThisDayParsesFeed(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testLogger())
	feed, err := client.OnThisDay(context.Background(), 7, 20)
	require.NoError(t, err)

	assert.Equal(t, "/7/20", gotPath)
	require.Len(t, feed.Events, 1)
	assert.Equal(t, 1969, feed.Events[0].Year)
	require.Len(t, feed.Events[0].Pages, 1)
	assert.Equal(t, "Moon landing", feed.Events[0].Pages[0].Title)
	require.NotNil(t, feed.Events[0].Pages[0].Thumbnail)
	assert.Len(t, feed.Selected, 1)
	assert.Len(t, feed.Births, 1)
	assert.Nil(t, feed.Deaths)
}

func TestOnThisDayValidatesDate(t *testing.T) {
	client := NewClient(testLogger())

	for _, tc := range []struct{ month, day int }{
		{0, 1}, {13, 1}, {1, 0}, {1, 32},
	} {
		_, err := client.OnThisDay(context.Background(), tc.month, tc.day)
		require.Error(t, err, "%d/%d", tc.month, tc.day)
		assert.True(t, errors.Is(err, errors.ErrValidation))
	}
}

func TestOnThisDayNon2xxIsExternalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testLogger())
	_, err := client.OnThisDay(context.Background(), 2, 29)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrExternal))
}

func TestOnThisDayBadBodyIsExternalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testLogger())
	_, err := client.OnThisDay(context.Background(), 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrExternal))
}

func TestOnThisDayTransportFailureIsExternalError(t *testing.T) {
	client := NewClientWithBaseURL("http://127.0.0.1:1", testLogger())
	_, err := client.OnThisDay(context.Background(), 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrExternal))
}

// blockingFetcher lets the test decide when each in-flight lookup returns.
type blockingFetcher struct {
	mu      sync.Mutex
	waiting map[Key]chan *Feed
}

func newBlockingFetcher() *blockingFetcher {
	return &blockingFetcher{waiting: make(map[Key]chan *Feed)}
}

func (f *blockingFetcher) OnThisDay(ctx context.Context, month, day int) (*Feed, error) {
	f.mu.Lock()
	ch := make(chan *Feed, 1)
	f.waiting[Key{month, day}] = ch
	f.mu.Unlock()
	return <-ch, nil
}

func (f *blockingFetcher) release(month, day int, feed *Feed) {
	f.mu.Lock()
	ch := f.waiting[Key{month, day}]
	f.mu.Unlock()
	ch <- feed
}

func (f *blockingFetcher) pending(month, day int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.waiting[Key{month, day}]
	return ok
}

func TestLookupDiscardsStaleResponse(t *testing.T) {
	fetcher := newBlockingFetcher()
	service := NewService(fetcher, testLogger())

	type outcome struct {
		feed *Feed
		err  error
	}
	first := make(chan outcome, 1)
	second := make(chan outcome, 1)

	go func() {
		feed, err := service.Lookup(context.Background(), 3, 10)
		first <- outcome{feed, err}
	}()
	require.Eventually(t, func() bool { return fetcher.pending(3, 10) }, time.Second, 10*time.Millisecond)

	go func() {
		feed, err := service.Lookup(context.Background(), 4, 11)
		second <- outcome{feed, err}
	}()
	require.Eventually(t, func() bool { return fetcher.pending(4, 11) }, time.Second, 10*time.Millisecond)

	// The newer lookup completes first, then the stale one arrives late.
	fetcher.release(4, 11, &Feed{Events: []Event{{Text: "new", Year: 2000}}})
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, "new", got.feed.Events[0].Text)

	fetcher.release(3, 10, &Feed{Events: []Event{{Text: "old", Year: 1900}}})
	got = <-first
	require.ErrorIs(t, got.err, ErrSuperseded)
	assert.Nil(t, got.feed)
}

func TestLookupCachesLastGoodFeed(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	service := NewService(NewClientWithBaseURL(server.URL, testLogger()), testLogger())

	_, err := service.Lookup(context.Background(), 7, 20)
	require.NoError(t, err)
	_, err = service.Lookup(context.Background(), 7, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// A different date bypasses the cache.
	_, err = service.Lookup(context.Background(), 7, 21)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
