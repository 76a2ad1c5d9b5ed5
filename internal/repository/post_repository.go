package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"microblog/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := r.db.Rebind(`
		INSERT INTO posts (text, author_id)
		VALUES (?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowxContext(ctx, query, post.Text, post.AuthorID).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

// GetByAuthorID returns the author's posts in ascending id order.
func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Post, error) {
	query := r.db.Rebind(`
		SELECT id, text, author_id FROM posts
		WHERE author_id = ?
		ORDER BY id
	`)

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("get posts of author %d: %w", authorID, err)
	}

	return posts, nil
}

// DeleteByOwner removes the post only when it belongs to authorID. A post
// that is missing and a post owned by someone else both yield ErrNotFound.
func (r *PostRepositoryImpl) DeleteByOwner(ctx context.Context, postID, authorID int64) (*models.Post, error) {
	query := r.db.Rebind(`
		DELETE FROM posts
		WHERE id = ? AND author_id = ?
		RETURNING id, text, author_id
	`)

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("delete post: %w", err)
	}

	return &post, nil
}
