package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/storage"
	"mentorhub_backend/pkg/apperrors"
)

// ResourceService stores shared files through the storage backend and
// tracks their metadata.
type ResourceService interface {
	Upload(ctx context.Context, ownerID string, upload ResourceUpload) (*models.Resource, error)
	GetByID(id string) (*models.Resource, error)
	Download(ctx context.Context, id string) (*models.Resource, io.ReadCloser, error)
	List(limit, offset int) ([]models.Resource, int64, error)
	ListByOwner(ownerID string) ([]models.Resource, error)
	Delete(ctx context.Context, userID string, role models.UserRole, id string) error
}

// ResourceUpload carries one incoming file.
type ResourceUpload struct {
	Title       string
	Description string
	FileName    string
	MimeType    string
	Size        int64
	Reader      io.Reader
}

type resourceService struct {
	resourceRepo repositories.ResourceRepository
	store        storage.Storage
}

func NewResourceService(resourceRepo repositories.ResourceRepository, store storage.Storage) ResourceService {
	return &resourceService{resourceRepo: resourceRepo, store: store}
}

func (s *resourceService) Upload(ctx context.Context, ownerID string, upload ResourceUpload) (*models.Resource, error) {
	cfg := config.GetConfig()

	if upload.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !isAllowedType(upload.MimeType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType
	}

	used, err := s.resourceRepo.SumSizeByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if used+upload.Size > cfg.Upload.MaxUserStorage {
		return nil, apperrors.New(apperrors.CodeLimitExceeded, "upload",
			"User storage quota exceeded", http.StatusRequestEntityTooLarge)
	}

	key := ownerID + "/" + uuid.New().String() + filepath.Ext(upload.FileName)
	url, err := s.store.Upload(ctx, key, upload.Reader, upload.Size, upload.MimeType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resource := &models.Resource{
		OwnerID:     ownerID,
		Title:       upload.Title,
		Description: upload.Description,
		FileName:    upload.FileName,
		FileKey:     key,
		FileURL:     url,
		MimeType:    upload.MimeType,
		Size:        upload.Size,
	}
	if err := s.resourceRepo.Create(resource); err != nil {
		// Metadata write failed; drop the orphaned object.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.SideEffectLog("resource", "cleanup orphaned upload", delErr)
		}
		return nil, apperrors.InternalError(err)
	}
	return resource, nil
}

func (s *resourceService) GetByID(id string) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrResourceNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return resource, nil
}

func (s *resourceService) Download(ctx context.Context, id string) (*models.Resource, io.ReadCloser, error) {
	resource, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.store.Download(ctx, resource.FileKey)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return resource, reader, nil
}

func (s *resourceService) List(limit, offset int) ([]models.Resource, int64, error) {
	resources, total, err := s.resourceRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return resources, total, nil
}

func (s *resourceService) ListByOwner(ownerID string) ([]models.Resource, error) {
	resources, err := s.resourceRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resources, nil
}

func (s *resourceService) Delete(ctx context.Context, userID string, role models.UserRole, id string) error {
	resource, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if resource.OwnerID != userID && role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.resourceRepo.Delete(resource.ID); err != nil {
		return apperrors.InternalError(err)
	}
	// Object removal after the metadata delete is best effort.
	if err := s.store.Delete(ctx, resource.FileKey); err != nil {
		logger.SideEffectLog("resource", "delete stored object", err)
	}
	return nil
}

func isAllowedType(mimeType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if t == mimeType {
			return true
		}
	}
	return false
}
