package repos

import (
	"uniformes/internal/domain"

	"github.com/jmoiron/sqlx"
)

type GarmentTypeRepo struct{ db *sqlx.DB }

func NewGarmentTypeRepo(db *sqlx.DB) *GarmentTypeRepo { return &GarmentTypeRepo{db: db} }

func (r *GarmentTypeRepo) List() ([]domain.GarmentType, error) {
	var out []domain.GarmentType
	err := r.db.Select(&out, `
	  SELECT id, name, has_custom_measurements,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM garment_types
	  ORDER BY name
	`)
	return out, err
}

func (r *GarmentTypeRepo) Get(id string) (domain.GarmentType, error) {
	var g domain.GarmentType
	err := r.db.Get(&g, `
	  SELECT id, name, has_custom_measurements,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM garment_types
	  WHERE id = ?
	`, id)
	return g, err
}

func (r *GarmentTypeRepo) Upsert(g domain.GarmentType) error {
	_, err := r.db.Exec(`
	  INSERT INTO garment_types(id, name, has_custom_measurements, updated_at)
	  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    name = excluded.name,
	    has_custom_measurements = excluded.has_custom_measurements,
	    updated_at = CURRENT_TIMESTAMP
	`, g.ID, g.Name, g.HasCustomMeasurements)
	return err
}
