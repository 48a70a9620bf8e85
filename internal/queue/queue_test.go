package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	want := EntryEvent{EntryID: 7, StudentID: "STU003", EntryDate: "2026-09-01"}
	require.NoError(t, q.Publish(ctx, want))

	events, err := q.Consume(ctx)
	require.NoError(t, err)

	select {
	case got := <-events:
		assert.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestInMemoryPublishHonorsContext(t *testing.T) {
	q := NewInMemory(1)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, q.Publish(ctx, EntryEvent{StudentID: "STU001"}))

	// Queue is full and nobody is consuming; a canceled context unblocks.
	cancel()
	err := q.Publish(ctx, EntryEvent{StudentID: "STU002"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsumeStopsOnCancel(t *testing.T) {
	q := NewInMemory(1)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := q.Consume(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
