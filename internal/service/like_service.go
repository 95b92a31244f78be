package service

import (
	"context"

	"blogfolio/internal/models"
	"blogfolio/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// ToggleLike flips the caller's like on a post and reports the resulting
// state: true when the like was created, false when it was removed.
func (s *LikeService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, err
	}
	return s.likeRepo.Toggle(ctx, userID, postID)
}

func (s *LikeService) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByPost(ctx, postID)
}
