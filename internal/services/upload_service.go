package services

import (
	"context"
	"encoding/base64"
	"strings"

	"relay-chat/internal/domain/upload"
	"relay-chat/internal/storage"
	relay_errors "relay-chat/pkg/errors"

	"github.com/google/uuid"
)

const (
	defaultFileName = "file"
	defaultFileType = "application/octet-stream"
	defaultFileExt  = "bin"
)

type UploadService struct {
	store    storage.ObjectStore
	maxBytes int64
	newID    func() string
}

func NewUploadService(store storage.ObjectStore, maxBytes int64) *UploadService {
	return &UploadService{store: store, maxBytes: maxBytes, newID: uuid.NewString}
}

type UploadInput struct {
	FileData string
	FileName string
	FileType string
}

func (s *UploadService) Upload(ctx context.Context, in UploadInput) (upload.StoredFile, error) {
	if in.FileData == "" {
		return upload.StoredFile{}, relay_errors.ErrNoFileData
	}
	size := int64(base64.StdEncoding.DecodedLen(len(in.FileData)))
	if s.maxBytes > 0 && size > s.maxBytes {
		return upload.StoredFile{}, relay_errors.ErrTooLarge
	}
	if in.FileName == "" {
		in.FileName = defaultFileName
	}
	if in.FileType == "" {
		in.FileType = defaultFileType
	}

	key := s.newID() + "." + FileExtension(in.FileName)
	url, err := s.store.Put(ctx, storage.Object{Key: key, ContentType: in.FileType, Data: in.FileData})
	if err != nil {
		return upload.StoredFile{}, err
	}

	return upload.StoredFile{
		Key:         key,
		URL:         url,
		FileName:    in.FileName,
		ContentType: in.FileType,
		Size:        size,
	}, nil
}

// FileExtension returns the text after the last '.', or "bin" when there is none.
func FileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return defaultFileExt
	}
	return name[i+1:]
}
