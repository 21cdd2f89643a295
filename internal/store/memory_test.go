package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)

	_, ok, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	rows := []models.Transaction{{Contact: "a", P1: 10}}
	require.NoError(t, st.Save(ctx, rows))
	rows[0].Contact = "mutated"

	got, ok, err := st.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", got[0].Contact, "cache keeps its own copy")

	require.NoError(t, st.Invalidate(ctx))
	_, ok, _ = st.Load(ctx)
	assert.False(t, ok)
}

func TestMemoryStoreEmptyLedgerIsStillAHit(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)
	require.NoError(t, st.Save(ctx, nil))
	_, ok, _ := st.Load(ctx)
	assert.True(t, ok)
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := NewMemoryStore(time.Minute)
	st.now = func() time.Time { return now }

	require.NoError(t, st.Save(ctx, []models.Transaction{{Contact: "a"}}))
	_, ok, _ := st.Load(ctx)
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = st.Load(ctx)
	assert.False(t, ok)
}
