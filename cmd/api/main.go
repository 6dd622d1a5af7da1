package main

import (
	"context"
	"log"

	"github.com/travelease/travelease-backend/internal/config"
	"github.com/travelease/travelease-backend/internal/handlers"
	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
	"github.com/travelease/travelease-backend/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Collection storage: S3 when AWS is configured, local files otherwise.
	var backend store.Backend
	if cfg.UseS3() {
		backend, err = store.NewS3Backend(cfg.AWSRegion, cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		log.Printf("Using S3 collection storage (bucket %s)", cfg.S3Bucket)
	} else {
		backend, err = store.NewFileBackend(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		log.Printf("Using local collection storage (%s)", cfg.DataDir)
	}

	s := store.New(backend)

	if err := seedAdmin(cfg, s); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	r := handlers.NewRouter(s, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedAdmin bootstraps a single admin account from the environment, but
// only into an empty users collection.
func seedAdmin(cfg *config.Config, s *store.Store) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx := context.Background()

	var users []models.User
	if err := s.ReadCollection(ctx, store.Users, &users); err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	admin := models.User{
		ID:       utils.NewID(),
		Username: "admin",
		Email:    cfg.AdminEmail,
		Role:     models.RoleAdmin,
	}
	if err := admin.HashPassword(cfg.AdminPassword); err != nil {
		return err
	}

	if err := s.WriteCollection(ctx, store.Users, []models.User{admin}); err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", cfg.AdminEmail)
	return nil
}
