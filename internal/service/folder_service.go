package service

import (
	"context"
	"strings"

	"consigna/internal/model"
	"consigna/internal/repository"
)

type FolderService interface {
	Create(ctx context.Context, name, uid string) (model.Folder, error)
	List(ctx context.Context, uid string) ([]model.Folder, error)
}

type folderService struct {
	folders repository.FolderRepository
}

func NewFolderService(folders repository.FolderRepository) FolderService {
	return &folderService{folders: folders}
}

func (s *folderService) Create(ctx context.Context, name, uid string) (model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" || uid == "" {
		return model.Folder{}, ErrInvalid
	}
	// Duplicate (name, uid) pairs are allowed on purpose.
	return s.folders.Create(ctx, name, uid)
}

func (s *folderService) List(ctx context.Context, uid string) ([]model.Folder, error) {
	if uid == "" {
		return nil, ErrInvalid
	}
	return s.folders.ListByOwner(ctx, uid)
}
