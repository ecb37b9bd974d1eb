package service

import (
	"context"
	"io"
	"time"

	"consigna/internal/model"
	"consigna/internal/storage"
)

const (
	// Hard cap on list results; there is no pagination past it.
	listLimit = 100
	// Lifetime of a signed download link.
	downloadExpiry = time.Hour
)

type FileService interface {
	Upload(ctx context.Context, uid, folder, filename string, r io.Reader, contentType string) (model.StoredFile, error)
	List(ctx context.Context, uid string) ([]model.StoredFile, error)
	Delete(ctx context.Context, uid, fileID, fileName string) (model.StoredFile, error)
	DownloadURL(ctx context.Context, uid, fileName string) (string, error)
}

type fileService struct {
	store storage.ObjectStore
}

func NewFileService(store storage.ObjectStore) FileService {
	return &fileService{store: store}
}

func (s *fileService) Upload(ctx context.Context, uid, folder, filename string, r io.Reader, contentType string) (model.StoredFile, error) {
	if uid == "" || filename == "" {
		return model.StoredFile{}, ErrInvalid
	}
	key := storage.ObjectKey(uid, folder, filename)
	file, err := s.store.Upload(ctx, key, r, contentType)
	if err != nil {
		return model.StoredFile{}, upstream("upload", err)
	}
	return file, nil
}

// List returns up to 100 entries under the caller's namespace. An empty uid
// lists across every user's namespace; that gap is part of the contract.
func (s *fileService) List(ctx context.Context, uid string) ([]model.StoredFile, error) {
	files, err := s.store.List(ctx, storage.OwnerPrefix(uid), listLimit)
	if err != nil {
		return nil, upstream("list", err)
	}
	return files, nil
}

func (s *fileService) Delete(ctx context.Context, uid, fileID, fileName string) (model.StoredFile, error) {
	if uid == "" || fileID == "" || fileName == "" {
		return model.StoredFile{}, ErrInvalid
	}
	if !storage.Owns(uid, fileName) {
		return model.StoredFile{}, ErrForbidden
	}
	if err := s.store.Delete(ctx, fileName); err != nil {
		return model.StoredFile{}, upstream("delete", err)
	}
	return model.StoredFile{FileID: fileID, FileName: fileName}, nil
}

func (s *fileService) DownloadURL(ctx context.Context, uid, fileName string) (string, error) {
	if uid == "" || fileName == "" {
		return "", ErrInvalid
	}
	if !storage.Owns(uid, fileName) {
		return "", ErrForbidden
	}
	url, err := s.store.SignedURL(ctx, fileName, downloadExpiry)
	if err != nil {
		return "", upstream("sign", err)
	}
	return url, nil
}
