package repositories

import (
	"errors"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBlogNotFound = errors.New("blog post not found")

type BlogRepository interface {
	Create(blog *models.Blog) error
	FindByID(id string) (*models.Blog, error)
	FindAll(limit, offset int) ([]models.Blog, int64, error)
	FindByAuthor(authorID string) ([]models.Blog, error)
	Update(blog *models.Blog) error
	Delete(id string) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *blogRepository) FindByID(id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Author").First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindAll(limit, offset int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	if err := r.db.Model(&models.Blog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error
	return blogs, total, err
}

func (r *blogRepository) FindByAuthor(authorID string) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

func (r *blogRepository) Delete(id string) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
