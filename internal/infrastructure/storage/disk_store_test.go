package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), "/storage", time.Second, 3)
	require.NoError(t, err)
	return store
}

func TestDiskStore_PutAndRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.Put(ctx, Upload{
		Name:    "photo.JPG",
		Content: strings.NewReader("image-bytes"),
		Folder:  "items",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/storage/items/"))
	require.True(t, strings.HasSuffix(url, ".jpg"))

	rel := strings.TrimPrefix(url, "/storage/")
	data, err := os.ReadFile(filepath.Join(store.basePath, filepath.FromSlash(rel)))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Remove(ctx, url))
	_, err = os.Stat(filepath.Join(store.basePath, filepath.FromSlash(rel)))
	require.True(t, os.IsNotExist(err))

	// removing twice and removing foreign URLs are both no-ops
	require.NoError(t, store.Remove(ctx, url))
	require.NoError(t, store.Remove(ctx, "https://elsewhere.example/x.jpg"))
}

func TestDiskStore_PutAllKeepsOrder(t *testing.T) {
	store := newTestStore(t)

	uploads := []Upload{
		{Name: "a.jpg", Content: strings.NewReader("a"), Folder: "items"},
		{Name: "b.png", Content: strings.NewReader("b"), Folder: "items"},
		{Name: "c.webp", Content: strings.NewReader("c"), Folder: "items"},
	}
	urls, err := store.PutAll(context.Background(), uploads)
	require.NoError(t, err)
	require.Len(t, urls, 3)
	require.True(t, strings.HasSuffix(urls[0], ".jpg"))
	require.True(t, strings.HasSuffix(urls[1], ".png"))
	require.True(t, strings.HasSuffix(urls[2], ".webp"))

	urls, err = store.PutAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, urls)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDiskStore_PutAllRollsBackOnFailure(t *testing.T) {
	store := newTestStore(t)

	uploads := []Upload{
		{Name: "ok.jpg", Content: strings.NewReader("ok"), Folder: "items"},
		{Name: "bad.jpg", Content: failingReader{}, Folder: "items"},
	}
	urls, err := store.PutAll(context.Background(), uploads)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.jpg")
	require.Nil(t, urls)

	// the successful upload must not survive the failed batch
	entries, err := os.ReadDir(filepath.Join(store.basePath, "items"))
	if err == nil {
		require.Empty(t, entries)
	}
}

func TestDiskStore_PutRespectsContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, Upload{Name: "x.jpg", Content: strings.NewReader("x"), Folder: "items"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiskStore_FolderSanitized(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Put(context.Background(), Upload{
		Name:    "x.jpg",
		Content: strings.NewReader("x"),
		Folder:  "../../etc",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/storage/misc/"))
}
