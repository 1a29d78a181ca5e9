package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intakeflow/internal/model"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := model.NewConversationState("s1", "transcript")
	state.Missing = model.MissingMap{"leningdeel": {"A"}}
	require.NoError(t, store.Save(ctx, state))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, state.ID, got.ID)
	assert.Equal(t, state.Missing, got.Missing)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.NewConversationState("s1", "t")))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrNotFound)
}

// The store hands out clones; mutating what callers hold must not leak back.
func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := model.NewConversationState("s1", "transcript")
	state.Missing = model.MissingMap{"leningdeel": {"A", "B"}}
	require.NoError(t, store.Save(ctx, state))

	// mutate the instance that was saved
	state.Missing["leningdeel"][0] = "kapot"
	state.QAHistory = append(state.QAHistory, model.QAPair{Question: "smokkel"})

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, []string(got.Missing["leningdeel"]))
	assert.Empty(t, got.QAHistory)

	// mutate the instance that was read
	got.Missing["leningdeel"][1] = "ook kapot"
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, []string(again.Missing["leningdeel"]))
}

func TestWithLockSerializesPerSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, model.NewConversationState("s1", "t")))

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := store.WithLock("s1", func() error {
				state, err := store.Get(ctx, "s1")
				if err != nil {
					return err
				}
				state.QuestionsAsked++
				return store.Save(ctx, state)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, workers, got.QuestionsAsked)
}

func TestWithLockPropagatesError(t *testing.T) {
	store := NewMemoryStore()

	err := store.WithLock("s1", func() error {
		return ErrNotFound
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
