package utils

import (
	"fmt"

	"travelsure/config"
	"travelsure/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initialises the Cloudinary-backed document store from configuration.
func Cloudinary() (*storage.CloudinaryStore, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewCloudinaryStore(cld, cfg.CloudinaryCloudName, cfg.CloudinaryAPISecret), nil
}

// DocumentStore returns Cloudinary when configured and an in-memory store otherwise.
func DocumentStore() storage.DocumentStore {
	store, err := Cloudinary()
	if err != nil {
		GetLogger().Sugar().Warnf("Policy documents kept in memory: %v", err)
		return storage.NewMemoryStore()
	}
	return store
}
