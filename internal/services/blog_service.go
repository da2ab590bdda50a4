package services

import (
	"encoding/json"
	"errors"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type BlogService interface {
	Create(authorID string, req dto.CreateBlogRequest) (*models.Blog, error)
	GetByID(id string) (*models.Blog, error)
	List(limit, offset int) ([]models.Blog, int64, error)
	ListByAuthor(authorID string) ([]models.Blog, error)
	Update(userID, blogID string, req dto.UpdateBlogRequest) (*models.Blog, error)
	Delete(userID string, role models.UserRole, blogID string) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) Create(authorID string, req dto.CreateBlogRequest) (*models.Blog, error) {
	tags, _ := json.Marshal(req.Tags)
	blog := &models.Blog{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     tags,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func (s *blogService) GetByID(id string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func (s *blogService) List(limit, offset int) ([]models.Blog, int64, error) {
	blogs, total, err := s.blogRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return blogs, total, nil
}

func (s *blogService) ListByAuthor(authorID string) ([]models.Blog, error) {
	blogs, err := s.blogRepo.FindByAuthor(authorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blogs, nil
}

func (s *blogService) Update(userID, blogID string, req dto.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.GetByID(blogID)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != userID {
		return nil, apperrors.ErrNotAuthor
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Tags != nil {
		tags, _ := json.Marshal(req.Tags)
		blog.Tags = tags
	}

	if err := s.blogRepo.Update(blog); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

// Delete removes a post; admins may remove any post.
func (s *blogService) Delete(userID string, role models.UserRole, blogID string) error {
	blog, err := s.GetByID(blogID)
	if err != nil {
		return err
	}
	if blog.AuthorID != userID && role != models.UserRoleAdmin {
		return apperrors.ErrNotAuthor
	}
	if err := s.blogRepo.Delete(blog.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
