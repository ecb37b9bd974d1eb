package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"consigna/internal/repository"
)

func TestFolderRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := repository.NewFolderRepository()
	ctx := context.Background()

	docs, err := repo.Create(ctx, "Docs", "u1")
	require.NoError(t, err)
	require.Equal(t, int64(1), docs.ID)
	require.Equal(t, "Docs", docs.Name)
	require.Equal(t, "u1", docs.UID)

	pics, err := repo.Create(ctx, "Pics", "u1")
	require.NoError(t, err)
	require.Equal(t, int64(2), pics.ID)
}

func TestFolderRepository_DuplicateNamesAllowed(t *testing.T) {
	repo := repository.NewFolderRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, "Docs", "u1")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "Docs", "u1")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	folders, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, folders, 2)
}

func TestFolderRepository_ListByOwner_FiltersAndOrders(t *testing.T) {
	repo := repository.NewFolderRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, "Docs", "u1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Other", "u2")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Pics", "u1")
	require.NoError(t, err)

	folders, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, folders, 2)
	require.Equal(t, "Docs", folders[0].Name)
	require.Equal(t, "Pics", folders[1].Name)
	for _, folder := range folders {
		require.Equal(t, "u1", folder.UID)
	}

	folders, err = repo.ListByOwner(ctx, "u3")
	require.NoError(t, err)
	require.Empty(t, folders)
}

func TestFolderRepository_ConcurrentCreates(t *testing.T) {
	repo := repository.NewFolderRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, fmt.Sprintf("folder-%d", i), "u1")
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	folders, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, folders, n)

	seen := make(map[int64]bool, n)
	for _, folder := range folders {
		require.False(t, seen[folder.ID], "id %d assigned twice", folder.ID)
		seen[folder.ID] = true
	}
}
