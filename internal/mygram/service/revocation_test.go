package service

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRevocationRegistry_RevokeAndCheck(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), time.Minute)

	require.False(t, reg.IsRevoked("jti-1"))

	reg.Revoke("jti-1", time.Now().Add(time.Hour))
	require.True(t, reg.IsRevoked("jti-1"))
	require.False(t, reg.IsRevoked("jti-2"))
}

func TestRevocationRegistry_RevokeIdempotent(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), time.Minute)

	reg.Revoke("jti-1", time.Now().Add(time.Hour))
	reg.Revoke("jti-1", time.Now().Add(time.Hour))
	require.Equal(t, 1, reg.Len())
}

func TestRevocationRegistry_IgnoresEmptyID(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), time.Minute)

	reg.Revoke("", time.Now().Add(time.Hour))
	require.Equal(t, 0, reg.Len())
}

func TestRevocationRegistry_ExpiredEntryDroppedOnRead(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), time.Minute)

	reg.Revoke("jti-1", time.Now().Add(-time.Second))
	require.False(t, reg.IsRevoked("jti-1"))
	require.Equal(t, 0, reg.Len())
}

func TestRevocationRegistry_SweepRemovesExpired(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), time.Minute)

	reg.Revoke("expired", time.Now().Add(-time.Second))
	reg.Revoke("live", time.Now().Add(time.Hour))
	require.Equal(t, 2, reg.Len())

	reg.sweep()

	require.Equal(t, 1, reg.Len())
	require.True(t, reg.IsRevoked("live"))
}

func TestRevocationRegistry_ConcurrentRevoke(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), time.Minute)
	expiry := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("jti-%d", n)
			reg.Revoke(id, expiry)
			reg.IsRevoked(id)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 50, reg.Len())
}

func TestRevocationRegistry_StartStop(t *testing.T) {
	reg := NewRevocationRegistry(discardLogger(), 10*time.Millisecond)

	reg.Start()
	reg.Revoke("expired", time.Now().Add(-time.Second))

	require.Eventually(t, func() bool {
		return reg.Len() == 0
	}, time.Second, 5*time.Millisecond)

	reg.Stop()
}
