package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Hour))
	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "key"))
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	_, hit, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"a":1}`), 0))
	data, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `{"a":1}`, string(data))

	require.NoError(t, c.Delete(ctx, "k"))
	_, hit, _ = c.Get(ctx, "k")
	assert.False(t, hit)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(time.Millisecond)
	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoFileExists(t, c.path("k"))
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, os.WriteFile(c.path("k"), []byte("not json"), 0o644))

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), 0))
	}
	n, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, hit, _ := c.Get(ctx, "a")
	assert.False(t, hit)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	type payload struct {
		Width int `json:"width"`
	}
	require.NoError(t, SetJSON(ctx, c, "p", payload{Width: 3}, 0))

	var got payload
	hit, err := GetJSON(ctx, c, "p", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 3, got.Width)

	require.NoError(t, c.Set(ctx, "bad", []byte("{"), 0))
	hit, err = GetJSON(ctx, c, "bad", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	_, present, _ := c.Get(ctx, "bad")
	assert.False(t, present)
}

func TestHash(t *testing.T) {
	assert.Equal(t, Hash([]byte("hello")), Hash([]byte("hello")))
	assert.NotEqual(t, Hash([]byte("hello")), Hash([]byte("world")))
	assert.Len(t, Hash([]byte("hello")), 64)
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	h := Hash([]byte("graph"))

	d1 := k.DifferentialKey(h, WindowKeyOpts{T: 0, Delta: 2})
	d2 := k.DifferentialKey(h, WindowKeyOpts{T: 1, Delta: 2})
	assert.NotEqual(t, d1, d2)
	assert.True(t, strings.HasPrefix(d1, "differential:"))

	a := k.AnalysisKey(h, WindowKeyOpts{T: 0, Delta: 2})
	assert.True(t, strings.HasPrefix(a, "analysis:"))

	assert.Equal(t, k.ExpansionKey(h), k.ExpansionKey(h))
	assert.NotEqual(t, k.ExpansionKey(h), k.ExpansionKey(Hash([]byte("other"))))
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "staging:")
	inner := NewDefaultKeyer()
	opts := WindowKeyOpts{T: 2, Delta: 3}

	assert.Equal(t, "staging:"+inner.DifferentialKey("h", opts), scoped.DifferentialKey("h", opts))
	assert.Equal(t, "staging:"+inner.AnalysisKey("h", opts), scoped.AnalysisKey("h", opts))
	assert.Equal(t, "staging:"+inner.ExpansionKey("h"), scoped.ExpansionKey("h"))

	nilInner := NewScopedKeyer(nil, "p:")
	assert.Equal(t, "p:"+inner.ExpansionKey("h"), nilInner.ExpansionKey("h"))
}

func TestRetryableError(t *testing.T) {
	assert.Nil(t, Retryable(nil))

	base := errors.New("boom")
	err := Retryable(base)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
	assert.False(t, IsRetryable(base))
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	ctx := context.Background()

	calls := 0
	require.NoError(t, RetryWithBackoff(ctx, func() error { calls++; return nil }))
	assert.Equal(t, 1, calls)

	permanent := errors.New("permanent")
	calls = 0
	err := RetryWithBackoff(ctx, func() error { calls++; return permanent })
	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(permanent)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = RetryWithBackoff(ctx, func() error { calls++; return Retryable(permanent) })
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errors.New("down"))
	})
	assert.Equal(t, context.Canceled, err)
}
