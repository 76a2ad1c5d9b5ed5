package handlers

import (
	"github.com/go-playground/validator/v10"

	"microblog/internal/config"
	"microblog/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	TablesService service.TablesService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		PostService:   service.Post,
		TablesService: service.Tables,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
