package repositories

import (
	"errors"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResourceNotFound = errors.New("resource not found")

type ResourceRepository interface {
	Create(resource *models.Resource) error
	FindByID(id string) (*models.Resource, error)
	FindAll(limit, offset int) ([]models.Resource, int64, error)
	FindByOwner(ownerID string) ([]models.Resource, error)
	SumSizeByOwner(ownerID string) (int64, error)
	Delete(id string) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *resourceRepository) FindByID(id string) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.Preload("Owner").First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) FindAll(limit, offset int) ([]models.Resource, int64, error) {
	var resources []models.Resource
	var total int64

	if err := r.db.Model(&models.Resource{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&resources).Error
	return resources, total, err
}

func (r *resourceRepository) FindByOwner(ownerID string) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

// SumSizeByOwner backs the per-user storage quota check.
func (r *resourceRepository) SumSizeByOwner(ownerID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Resource{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(size), 0)").
		Scan(&total).Error
	return total, err
}

func (r *resourceRepository) Delete(id string) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}
