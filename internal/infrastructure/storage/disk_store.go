package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"lizexpress.backend/pkg/logger"
	"lizexpress.backend/pkg/utils"
)

// DiskStore stores objects on the local filesystem and serves them
// under a public base URL.
type DiskStore struct {
	basePath      string
	publicBaseURL string
	uploadTimeout time.Duration
	maxConcurrent int
}

// NewDiskStore creates a disk-backed object store. basePath is created
// if it does not exist.
func NewDiskStore(basePath, publicBaseURL string, uploadTimeout time.Duration, maxConcurrent int) (*DiskStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &DiskStore{
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		uploadTimeout: uploadTimeout,
		maxConcurrent: maxConcurrent,
	}, nil
}

// Put stores a single file and returns its public URL
func (s *DiskStore) Put(ctx context.Context, upload Upload) (string, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}
	return s.put(ctx, upload)
}

// PutAll stores every file concurrently or none at all. Order of the
// returned URLs matches the order of the uploads.
func (s *DiskStore) PutAll(ctx context.Context, uploads []Upload) ([]string, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	urls := make([]string, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i := range uploads {
		i := i
		g.Go(func() error {
			fctx := gctx
			if s.uploadTimeout > 0 {
				var cancel context.CancelFunc
				fctx, cancel = context.WithTimeout(gctx, s.uploadTimeout)
				defer cancel()
			}
			url, err := s.put(fctx, uploads[i])
			if err != nil {
				return fmt.Errorf("upload %q: %w", uploads[i].Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, url := range urls {
			if url == "" {
				continue
			}
			if rmErr := s.Remove(ctx, url); rmErr != nil {
				logger.Warn(ctx, "failed to roll back stored object",
					zap.String("url", url), zap.Error(rmErr))
			}
		}
		return nil, err
	}
	return urls, nil
}

// Remove deletes a stored object by its public URL
func (s *DiskStore) Remove(_ context.Context, publicURL string) error {
	rel, ok := s.relPath(publicURL)
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskStore) put(ctx context.Context, upload Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	folder := filepath.Clean(upload.Folder)
	if folder == "." || folder == ".." || strings.Contains(folder, "..") {
		folder = "misc"
	}
	dir := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	name := utils.GenerateUUIDv7().String() + strings.ToLower(filepath.Ext(upload.Name))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(f, readerWithContext{ctx: ctx, r: upload.Content})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicBaseURL + "/" + folder + "/" + name, nil
}

func (s *DiskStore) relPath(publicURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(publicURL, prefix)
	if rel == "" || strings.Contains(rel, "..") {
		return "", false
	}
	return rel, true
}

// readerWithContext aborts a copy once the context is done, so a slow
// upload cannot outlive its deadline.
type readerWithContext struct {
	ctx context.Context
	r   io.Reader
}

func (r readerWithContext) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
