package service

import (
	"context"

	"blogfolio/internal/models"
	"blogfolio/internal/repository"
	"blogfolio/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	Content  string
	Category string
}

// UpdatePostInput uses pointers so absent fields are left untouched;
// a present-but-empty field is a validation error, not a no-op.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    *string
	Content  *string
	Category *string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

const maxTitleLen = 200

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if err := validation.ValidateCategory(in.Category); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns the post with its comment thread attached.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByIDWithComments(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	if filter.Category != "" {
		if err := validation.ValidateCategory(filter.Category); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}
	return s.postRepo.List(ctx, filter)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		post.Content = *in.Content
	}
	if in.Category != nil {
		if err := validation.ValidateCategory(*in.Category); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Category = *in.Category
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.DeleteWithComments(ctx, in.PostID)
}
