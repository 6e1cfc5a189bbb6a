package container

import (
	"log/slog"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/profiled/internal/config"
	"github.com/joshua-takyi/profiled/internal/crypto"
	"github.com/joshua-takyi/profiled/internal/favicon"
	"github.com/joshua-takyi/profiled/internal/models"
	"github.com/joshua-takyi/profiled/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	Config         *config.Config
	Cloudinary     *cloudinary.Cloudinary
	MongoDBClient  *mongo.Client
	ProfileRepo    *models.MongodbRepo
	UserService    *services.UserService
	ProfileService *services.ProfileService
}

// NewContainer creates a new dependency injection container. The field
// encryption key and token secret flow in through cfg; nothing reads the
// environment after this point.
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) (*Container, error) {
	cipher, err := crypto.New(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBDatabase)
	favicons := favicon.NewFetcher(http.DefaultClient)

	userService := services.NewUserService(repo, cipher, cfg.JWTSecret)
	profileService := services.NewProfileService(repo, cipher, favicons, cld)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		Cloudinary:     cld,
		MongoDBClient:  mongoDBClient,
		ProfileRepo:    repo,
		UserService:    userService,
		ProfileService: profileService,
	}, nil
}
