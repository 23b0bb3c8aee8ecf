package viewer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistryReusesLiveSession(t *testing.T) {
	t.Parallel()

	r := NewRegistry(time.Minute)
	now := t0
	r.Now = func() time.Time { return now }

	s := r.Session("")
	require.NotEmpty(t, s.ID)
	require.Same(t, s, r.Session(s.ID))

	other := r.Session("unknown")
	require.NotEqual(t, s.ID, other.ID)
	require.Equal(t, 2, r.Len())
}

func TestRegistryExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	r := NewRegistry(time.Minute)
	now := t0
	r.Now = func() time.Time { return now }

	s := r.Session("")
	now = now.Add(2 * time.Minute)

	fresh := r.Session(s.ID)
	require.NotEqual(t, s.ID, fresh.ID)
	require.Equal(t, 1, r.Len())

	now = now.Add(2 * time.Minute)
	require.Equal(t, 1, r.Sweep())
	require.Zero(t, r.Len())
}

func TestSessionDoProjectsSurface(t *testing.T) {
	t.Parallel()

	r := NewRegistry(0)
	require.Equal(t, DefaultSessionTTL, r.TTL)
	s := r.Session("")

	view := s.Do(nil)
	require.False(t, view.Open)
	require.False(t, view.ScrollLocked)

	clip := vid("clip")
	view = s.Do(func(v *Viewer, _ *Deduper) {
		require.NoError(t, v.OpenSingle(clip, "clip"))
	})
	require.True(t, view.Open)
	require.True(t, view.IsVideo)
	require.True(t, view.Autoplay)
	require.True(t, view.ScrollLocked)

	view = s.Do(func(v *Viewer, _ *Deduper) { v.Close() })
	require.False(t, view.Open)
	require.False(t, view.Autoplay)
	require.False(t, view.ScrollLocked)
}

func TestSessionSerializesConcurrentRequests(t *testing.T) {
	t.Parallel()

	g := Gallery{img("a"), img("b"), img("c"), img("d")}
	s := NewRegistry(time.Minute).Session("")
	s.Do(func(v *Viewer, _ *Deduper) {
		require.NoError(t, v.Open(g[0], "", g, 0))
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(v *Viewer, _ *Deduper) { v.Next() })
		}()
	}
	wg.Wait()

	view := s.Do(nil)
	require.Equal(t, "4 / 4", view.Position)
	require.True(t, view.NextDisabled)
}

func TestRegistryRunStopsWithContext(t *testing.T) {
	t.Parallel()

	r := NewRegistry(time.Millisecond)
	r.Session("")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
