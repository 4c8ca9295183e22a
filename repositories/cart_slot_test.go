package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartSlot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemoryCartSlot()

	_, err := slot.Load(ctx, "cart:a")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	payload := []byte(`[]`)
	require.NoError(t, slot.Save(ctx, "cart:a", payload))
	payload[0] = 'x'

	got, err := slot.Load(ctx, "cart:a")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got), "slot must not alias the caller's buffer")

	require.NoError(t, slot.Delete(ctx, "cart:a"))
	_, err = slot.Load(ctx, "cart:a")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	assert.NoError(t, slot.Delete(ctx, "cart:missing"))
}
