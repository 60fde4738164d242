package setup

import (
	"forumapi/internal/config"
	"forumapi/internal/handler"
	"forumapi/internal/jwt"
	"forumapi/internal/middleware"
	"forumapi/internal/service"
	"forumapi/internal/storage/pg"
	"forumapi/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService, &utils.UserValidator{})
	threads := service.NewThread(storage, storage, storage, &utils.ThreadValidator{})
	comments := service.NewComment(storage, storage, &utils.ContentValidator{})
	replies := service.NewReply(storage, storage, storage, &utils.ContentValidator{})
	likes := service.NewLike(storage, storage, storage)

	h := handler.New(auth, threads, comments, replies, likes)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
