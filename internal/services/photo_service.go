package services

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/helpers"
	"WhereIsIt/internal/models"
	"WhereIsIt/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type PhotoService interface {
	UploadPhoto(ctx context.Context, itemID uint, upload dto.PhotoUploadDTO) (*models.Item, error)
	OpenPhoto(ctx context.Context, key string) (storage.Info, io.ReadCloser, error)
}

type photoServiceImpl struct {
	itemService ItemService
	store       storage.Store
	logService  LogService
}

func NewPhotoService(itemService ItemService, store storage.Store, logService LogService) PhotoService {
	return &photoServiceImpl{itemService: itemService, store: store, logService: logService}
}

// UploadPhoto stores the image and points the item at it. The previous photo
// blob, if any, is removed after the item is updated.
func (s *photoServiceImpl) UploadPhoto(ctx context.Context, itemID uint, upload dto.PhotoUploadDTO) (*models.Item, error) {
	if !helpers.IsImage(upload.ContentType) {
		return nil, &ValidationError{Field: "file", Message: "must be an image"}
	}
	item, err := s.itemService.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}

	key := helpers.PhotoKey(itemID, upload.FileName)
	if err = s.store.Put(ctx, key, upload.Content, upload.ContentType); err != nil {
		return nil, fmt.Errorf("store photo for item %d: %w", itemID, err)
	}
	updated, err := s.itemService.SetPhotoPath(itemID, helpers.PhotoURL(key))
	if err != nil {
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	if item.PhotoPath != nil {
		if previous := helpers.PhotoKeyFromURL(*item.PhotoPath); previous != "" {
			if err = s.store.Delete(ctx, previous); err != nil {
				s.logService.Log.WithFields(logrus.Fields{
					"item":  itemID,
					"key":   previous,
					"error": err.Error(),
				}).Warn("failed to delete replaced photo")
			}
		}
	}
	s.logService.Log.WithFields(logrus.Fields{
		"item":   itemID,
		"key":    key,
		"size":   upload.Size,
		"driver": s.store.Driver(),
	}).Info("photo uploaded")
	return updated, nil
}

func (s *photoServiceImpl) OpenPhoto(ctx context.Context, key string) (storage.Info, io.ReadCloser, error) {
	if !storage.ValidKey(key) {
		return storage.Info{}, nil, &NotFoundError{Entity: "Photo", Key: key}
	}
	info, body, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return storage.Info{}, nil, &NotFoundError{Entity: "Photo", Key: key}
		}
		return storage.Info{}, nil, err
	}
	return info, body, nil
}
