package service

import (
	"context"
	"errors"
	"fmt"

	"microblog/internal/cache"
	"microblog/internal/models"
	"microblog/internal/repository"
)

// PostService works on behalf of an already authenticated user. The user is
// the only authority for ownership; no id from a request body is trusted.
type PostService interface {
	CreatePost(ctx context.Context, user *models.User, text string) (*models.Post, error)
	ListPosts(ctx context.Context, user *models.User) ([]models.Post, error)
	DeletePost(ctx context.Context, user *models.User, postID int64) (*models.Post, error)
}

type postService struct {
	postRepo       repository.PostRepository
	cache          *cache.PostCache
	maxPayloadSize int
	// clear the whole cache on every write instead of the owner's entry
	globalInvalidation bool
}

func NewPostService(postRepo repository.PostRepository, postCache *cache.PostCache, maxPayloadSize int, globalInvalidation bool) PostService {
	return &postService{
		postRepo:           postRepo,
		cache:              postCache,
		maxPayloadSize:     maxPayloadSize,
		globalInvalidation: globalInvalidation,
	}
}

func (p *postService) CreatePost(ctx context.Context, user *models.User, text string) (*models.Post, error) {
	if len(text) > p.maxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(text), p.maxPayloadSize)
	}

	post := &models.Post{
		Text:     text,
		AuthorID: user.ID,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	p.invalidate(user)
	return post, nil
}

func (p *postService) ListPosts(ctx context.Context, user *models.User) ([]models.Post, error) {
	if posts, ok := p.cache.Get(user.Email); ok {
		return posts, nil
	}

	snapshot := p.cache.Snapshot()
	posts, err := p.postRepo.GetByAuthorID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	p.cache.PutAt(user.Email, posts, snapshot)
	return posts, nil
}

func (p *postService) DeletePost(ctx context.Context, user *models.User, postID int64) (*models.Post, error) {
	post, err := p.postRepo.DeleteByOwner(ctx, postID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.invalidate(user)
	return post, nil
}

func (p *postService) invalidate(user *models.User) {
	if p.globalInvalidation {
		p.cache.InvalidateAll()
		return
	}
	p.cache.Invalidate(user.Email)
}
