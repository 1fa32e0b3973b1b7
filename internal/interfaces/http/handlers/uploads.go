package handlers

import (
	"mime/multipart"
	"path/filepath"

	"lizexpress.backend/internal/infrastructure/storage"
)

// openUploads turns multipart file headers into storage uploads. The
// returned closer must be called after the store has consumed them.
func openUploads(headers []*multipart.FileHeader) ([]storage.Upload, func(), error) {
	uploads := make([]storage.Upload, 0, len(headers))
	var files []multipart.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, file)
		uploads = append(uploads, storage.Upload{
			Name:    filepath.Base(header.Filename),
			Content: file,
		})
	}
	return uploads, closeAll, nil
}
