package service

import (
	"golang.org/x/crypto/bcrypt"

	"microblog/internal/cache"
	"microblog/internal/config"
	"microblog/internal/repository"
)

type Service struct {
	Token  TokenService
	Auth   AuthService
	Post   PostService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, postCache *cache.PostCache) (*Service, error) {
	hasher, err := NewBcryptHasher(bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tokens := NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenDuration)

	return &Service{
		Token:  tokens,
		Auth:   NewAuthService(rep.User, tokens, hasher),
		Post:   NewPostService(rep.Post, postCache, cfg.MaxPayloadSize, cfg.Cache.Invalidation == config.InvalidateAll),
		Tables: NewTablesService(rep.Tables),
	}, nil
}
