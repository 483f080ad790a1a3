package handlers

import (
	"uniformes/internal/backend"
	"uniformes/internal/config"
	"uniformes/internal/draft"
	"uniformes/internal/repos"
	"uniformes/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SchoolHandler   *SchoolHandler
	ProductHandler  *ProductHandler
	SearchHandler   *SearchHandler
	FavoriteHandler *FavoriteHandler
	DraftHandler    *DraftHandler
	SubmitHandler   *SubmitHandler
	StockHandler    *StockHandler
	ClientHandler   *ClientHandler
	CatalogHandler  *CatalogAPIHandler
	AdminHandler    *AdminHandler
	AvailHandler    *AvailabilityHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, api *backend.Client, drafts *draft.Store) *Deps {
	schoolRepo := repos.NewSchoolRepo(db)
	garmentRepo := repos.NewGarmentTypeRepo(db)
	prodRepo := repos.NewProductRepo(db)
	clientRepo := repos.NewClientRepo(db)
	journalRepo := repos.NewJournalRepo(db)
	favRepo := repos.NewFavoriteRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(schoolRepo, garmentRepo, prodRepo)
	composerSvc := services.NewComposerService(schoolRepo, garmentRepo, prodRepo)
	submitSvc := services.NewSubmitService(api, journalRepo)
	stockSvc := services.NewStockService(api)
	syncSvc := services.NewSyncService(api, schoolRepo, garmentRepo, prodRepo, clientRepo)
	favSvc := services.NewFavoriteService(favRepo)

	return &Deps{
		SchoolHandler:   &SchoolHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		FavoriteHandler: &FavoriteHandler{Fav: favSvc},
		DraftHandler:    &DraftHandler{Drafts: drafts, Composer: composerSvc},
		SubmitHandler:   &SubmitHandler{Drafts: drafts, Submit: submitSvc},
		StockHandler:    &StockHandler{Stock: stockSvc},
		ClientHandler:   &ClientHandler{Clients: clientRepo},
		CatalogHandler:  &CatalogAPIHandler{Catalog: catalogSvc},
		AdminHandler:    &AdminHandler{Journal: journalRepo, Prods: prodRepo, Users: userRepo, Sync: syncSvc, BackendConfigured: cfg.BackendURL != ""},
		AvailHandler:    &AvailabilityHandler{Catalog: catalogSvc},
	}
}
