package service

import (
	"context"
	"testing"

	"eurder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	item := testItem(t, "42.50")

	repo := new(MockItemRepository)
	repo.On("Create", ctx, item).Return(nil)

	svc := NewItemService(repo, logger)
	stored, err := svc.Create(ctx, item)

	require.NoError(t, err)
	assert.Equal(t, item, stored)
	repo.AssertExpectations(t)
}

func TestItemService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	item := testItem(t, "45.00")

	repo := new(MockItemRepository)
	repo.On("Update", ctx, item).Return(true, nil)

	svc := NewItemService(repo, logger)
	updated, err := svc.Update(ctx, item)

	require.NoError(t, err)
	assert.Equal(t, item, updated)
}

func TestItemService_Update_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	item := testItem(t, "45.00")

	repo := new(MockItemRepository)
	repo.On("Update", ctx, item).Return(false, nil)

	svc := NewItemService(repo, logger)
	_, err := svc.Update(ctx, item)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestItemService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	id := uuid.New()

	repo := new(MockItemRepository)
	repo.On("GetByID", ctx, id).Return(nil, nil)

	svc := NewItemService(repo, logger)
	_, err := svc.GetByID(ctx, id)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestItemService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	items := []model.Item{testItem(t, "1.00"), testItem(t, "2.00")}

	repo := new(MockItemRepository)
	repo.On("GetAll", ctx).Return(items, nil)

	svc := NewItemService(repo, logger)
	got, err := svc.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}
