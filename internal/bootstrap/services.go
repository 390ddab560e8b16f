package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/meinblog/blog-api/config"
	"github.com/meinblog/blog-api/internal/auth"
	"github.com/meinblog/blog-api/internal/data"
	"github.com/meinblog/blog-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	Profile *service.ProfileService
	Posts   *service.PostService
	Tokens  *auth.TokenCodec
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	Conns       *data.ConnCache
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices constructs the repositories and services behind the HTTP API.
func BuildServices(deps ServiceDeps) ServiceContainer {
	cfg := deps.Config

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userRepo := data.NewUserRepo(deps.Conns)
	postRepo := data.NewPostRepo(deps.Conns)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Users:  userRepo,
		Hasher: hasher,
		Tokens: tokens,
	})
	authSvc.SetMinPasswordLength(cfg.Auth.MinPasswordLength)

	profileSvc := service.NewProfileService(service.ProfileServiceOptions{Users: userRepo})

	var cache service.PostCache
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}
	postSvc := service.NewPostService(service.PostServiceOptions{Posts: postRepo, Cache: cache})
	postSvc.SetCacheTTL(cfg.Cache.PostListTTL)

	return ServiceContainer{
		Auth:    authSvc,
		Profile: profileSvc,
		Posts:   postSvc,
		Tokens:  tokens,
	}
}
