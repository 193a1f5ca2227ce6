package service

import (
	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		CatalogService: NewCatalogService(storages.BookRepository, logger),
	}
}
