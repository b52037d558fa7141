package docstore

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func TestCollectionRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var docs []testDoc
	err = store.MutateCollection("items.json", &docs, func() error {
		docs = append(docs, testDoc{ID: "a", Body: "one"})
		return nil
	})
	require.NoError(t, err)

	var loaded []testDoc
	require.NoError(t, store.LoadCollection("items.json", &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "one", loaded[0].Body)
}

func TestLoadCollectionMissingFile(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var docs []testDoc
	require.NoError(t, store.LoadCollection("missing.json", &docs))
	assert.Empty(t, docs)
}

func TestMutateCollectionConcurrentAppends(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var docs []testDoc
			_ = store.MutateCollection("items.json", &docs, func() error {
				docs = append(docs, testDoc{ID: uuid.NewString()})
				return nil
			})
		}()
	}
	wg.Wait()

	var docs []testDoc
	require.NoError(t, store.LoadCollection("items.json", &docs))
	assert.Len(t, docs, 10)
}

func TestDocumentRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	key := Key(uuid.NewString(), uuid.NewString())
	require.NoError(t, store.WriteDocument(key, testDoc{ID: "x", Body: "payload"}))

	var loaded testDoc
	require.NoError(t, store.ReadDocument(key, &loaded))
	assert.Equal(t, "payload", loaded.Body)
}

func TestWriteDocumentNeverOverwrites(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	key := Key(uuid.NewString(), uuid.NewString())
	require.NoError(t, store.WriteDocument(key, testDoc{Body: "first"}))
	assert.Error(t, store.WriteDocument(key, testDoc{Body: "second"}))

	var loaded testDoc
	require.NoError(t, store.ReadDocument(key, &loaded))
	assert.Equal(t, "first", loaded.Body)
}

func TestReadDocumentNotFound(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var doc testDoc
	err = store.ReadDocument(Key(uuid.NewString(), uuid.NewString()), &doc)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSplitKeyRejectsMalformedKeys(t *testing.T) {
	for _, key := range []string{
		"",
		"plain",
		"../../etc/passwd",
		"a_b",
		uuid.NewString() + "_" + "not-a-uuid",
		uuid.NewString() + "_" + uuid.NewString() + "_extra",
	} {
		_, _, err := SplitKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}

	owner, record := uuid.NewString(), uuid.NewString()
	gotOwner, gotRecord, err := SplitKey(Key(owner, record))
	assert.NoError(t, err)
	assert.Equal(t, owner, gotOwner)
	assert.Equal(t, record, gotRecord)
}
