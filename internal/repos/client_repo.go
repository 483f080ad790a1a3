package repos

import (
	"uniformes/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ClientRepo struct{ db *sqlx.DB }

func NewClientRepo(db *sqlx.DB) *ClientRepo { return &ClientRepo{db: db} }

func (r *ClientRepo) Get(id string) (domain.Client, error) {
	var c domain.Client
	err := r.db.Get(&c, `
	  SELECT id, name, COALESCE(document,'') AS document,
	         COALESCE(phone,'') AS phone, COALESCE(email,'') AS email
	  FROM clients
	  WHERE id = ?
	`, id)
	return c, err
}

// Search matches by name or document prefix; empty q lists the most
// recently added clients.
func (r *ClientRepo) Search(q string, limit int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.Client
	if q == "" {
		err := r.db.Select(&out, `
		  SELECT id, name, COALESCE(document,'') AS document,
		         COALESCE(phone,'') AS phone, COALESCE(email,'') AS email
		  FROM clients
		  ORDER BY created_at DESC
		  LIMIT ?
		`, limit)
		return out, err
	}
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(document,'') AS document,
	         COALESCE(phone,'') AS phone, COALESCE(email,'') AS email
	  FROM clients
	  WHERE LOWER(name) LIKE ? OR document LIKE ?
	  ORDER BY name
	  LIMIT ?
	`, "%"+q+"%", q+"%", limit)
	return out, err
}

func (r *ClientRepo) Upsert(c domain.Client) error {
	_, err := r.db.Exec(`
	  INSERT INTO clients(id, name, document, phone, email, updated_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    name = excluded.name, document = excluded.document,
	    phone = excluded.phone, email = excluded.email,
	    updated_at = CURRENT_TIMESTAMP
	`, c.ID, c.Name, c.Document, c.Phone, c.Email)
	return err
}
