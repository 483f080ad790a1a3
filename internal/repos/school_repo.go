package repos

import (
	"uniformes/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SchoolRepo struct{ db *sqlx.DB }

func NewSchoolRepo(db *sqlx.DB) *SchoolRepo { return &SchoolRepo{db: db} }

func (r *SchoolRepo) List() ([]domain.School, error) {
	var out []domain.School
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(city,'') AS city, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM schools
	  WHERE active = 1
	  ORDER BY name
	`)
	return out, err
}

func (r *SchoolRepo) Get(id string) (domain.School, error) {
	var s domain.School
	err := r.db.Get(&s, `
	  SELECT id, name, COALESCE(city,'') AS city, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM schools
	  WHERE id = ?
	`, id)
	return s, err
}

// Upsert refreshes one cached school row from the backend read model.
func (r *SchoolRepo) Upsert(s domain.School) error {
	_, err := r.db.Exec(`
	  INSERT INTO schools(id, name, city, active, updated_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    name = excluded.name, city = excluded.city,
	    active = excluded.active, updated_at = CURRENT_TIMESTAMP
	`, s.ID, s.Name, s.City, s.Active)
	return err
}
