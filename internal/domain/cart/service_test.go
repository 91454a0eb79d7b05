package cart

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	snapshots map[string]Cart
	loadErr   error
	saveErr   error
}

func newMemStore() *memStore {
	return &memStore{snapshots: map[string]Cart{}}
}

func (m *memStore) Load(_ context.Context, sessionID string) (Cart, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	c, ok := m.snapshots[sessionID]
	if !ok {
		return Cart{}, nil
	}
	return c, nil
}

func (m *memStore) Save(_ context.Context, sessionID string, c Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshots[sessionID] = c
	return nil
}

func (m *memStore) Delete(_ context.Context, sessionID string) error {
	delete(m.snapshots, sessionID)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestServicePersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store, testLogger())

	_, err := svc.Add(ctx, "s1", candidate(1, "$25.00"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "s1", candidate(1, "$25.00"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "s1", candidate(2, "$10.00"))
	require.NoError(t, err)

	c := svc.Get(ctx, "s1")
	require.Len(t, c, 2)
	assert.Equal(t, 2, c[0].Quantity)
	assert.Equal(t, 3, c.ItemCount())

	c, err = svc.SetQuantity(ctx, "s1", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, c.ItemCount())
	assert.Equal(t, 7, svc.Get(ctx, "s1").ItemCount())

	c, err = svc.RemoveProduct(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, c, 1)

	c, err = svc.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c)
	assert.Empty(t, store.snapshots["s1"])
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), testLogger())

	_, err := svc.Add(ctx, "s1", candidate(1, "$25.00"))
	require.NoError(t, err)

	assert.Empty(t, svc.Get(ctx, "s2"))
}

func TestServiceSwallowsCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.loadErr = ErrSnapshotCorrupt
	svc := NewService(store, testLogger())

	assert.Empty(t, svc.Get(ctx, "s1"))

	// A mutation on top of a corrupt snapshot starts from an empty cart.
	store.loadErr = nil
	store.snapshots["s1"] = nil
	c, err := svc.Add(ctx, "s1", candidate(1, "$25.00"))
	require.NoError(t, err)
	require.Len(t, c, 1)
}

func TestServiceReturnsCartEvenWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.saveErr = errors.New("redis gone")
	svc := NewService(store, testLogger())

	c, err := svc.Add(ctx, "s1", candidate(1, "$25.00"))

	// The state transition still happened; the caller decides whether the
	// persistence failure matters.
	require.Error(t, err)
	require.Len(t, c, 1)
}
