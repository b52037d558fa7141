package uploads

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unseekableReader hides the Seeker of the wrapped reader.
type unseekableReader struct {
	r io.Reader
}

func (u unseekableReader) Read(p []byte) (int, error) { return u.r.Read(p) }

func TestSaveWritesUnderRandomName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(bytes.NewReader([]byte("jpegdata")), "../evil/Portrait.JPG")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".jpg"), "name %q keeps the lower-cased extension", name)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "Portrait")

	data, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))
}

func TestSaveMeasuresSeekableStream(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("x"), MaxPhotoBytes+1)
	_, err = store.Save(bytes.NewReader(payload), "big.png")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveBuffersUnseekableStream(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(unseekableReader{r: strings.NewReader("pngdata")}, "pic.png")
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	assert.Equal(t, "pngdata", string(data))
}

func TestSaveRejectsOversizedUnseekableStream(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("x"), MaxPhotoBytes+1)
	_, err = store.Save(unseekableReader{r: bytes.NewReader(payload)}, "big.png")
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(filepath.Dir(store.Path("probe")))
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written for rejected uploads")
}
