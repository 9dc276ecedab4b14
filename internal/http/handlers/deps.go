package handlers

import (
	"github.com/jmoiron/sqlx"

	"catalogd/internal/config"
	"catalogd/internal/repos"
	"catalogd/internal/services"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	UploadHandler   *UploadHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		UploadHandler:   &UploadHandler{MediaDir: cfg.MediaDir},
	}
}
