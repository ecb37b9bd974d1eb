package repository

import (
	"context"
	"sync"

	"consigna/internal/model"
)

// FolderRepository holds the per-user folder registry.
type FolderRepository interface {
	Create(ctx context.Context, name, uid string) (model.Folder, error)
	ListByOwner(ctx context.Context, uid string) ([]model.Folder, error)
}

// memoryFolderRepository keeps folders in process memory with ids assigned
// from a monotonic counter starting at 1. Duplicate (name, uid) pairs are
// allowed. Nothing survives a restart.
type memoryFolderRepository struct {
	mu      sync.Mutex
	nextID  int64
	folders []model.Folder
}

func NewFolderRepository() FolderRepository {
	return &memoryFolderRepository{nextID: 1}
}

func (r *memoryFolderRepository) Create(_ context.Context, name, uid string) (model.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder := model.Folder{ID: r.nextID, Name: name, UID: uid}
	r.nextID++
	r.folders = append(r.folders, folder)
	return folder, nil
}

func (r *memoryFolderRepository) ListByOwner(_ context.Context, uid string) ([]model.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Insertion order is the listing order.
	owned := make([]model.Folder, 0)
	for _, folder := range r.folders {
		if folder.UID == uid {
			owned = append(owned, folder)
		}
	}
	return owned, nil
}
