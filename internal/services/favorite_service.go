package services

import "uniformes/internal/repos"

// FavoriteService is the storefront's saved-products list.
type FavoriteService struct {
	Repo *repos.FavoriteRepo
}

func NewFavoriteService(r *repos.FavoriteRepo) *FavoriteService { return &FavoriteService{Repo: r} }

func (s *FavoriteService) Save(sessionID, productID string) error {
	return s.Repo.Add(sessionID, productID)
}

func (s *FavoriteService) Unsave(sessionID, productID string) error {
	return s.Repo.Remove(sessionID, productID)
}

func (s *FavoriteService) List(sessionID string) ([]repos.FavoriteRow, error) {
	return s.Repo.List(sessionID)
}
