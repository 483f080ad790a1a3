package repos

import (
	"uniformes/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, school_id, garment_type_id, name,
  COALESCE(size,'') AS size, COALESCE(color,'') AS color, COALESCE(gender,'') AS gender,
  price, stock, active, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) ListBySchool(schoolID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE school_id = ? AND active = 1
	  ORDER BY name, size
	`, schoolID)
	return out, err
}

// ListOrderable returns the catalog-composer list: active products of
// the school with zero current stock (in-stock items are sold directly,
// not ordered).
func (r *ProductRepo) ListOrderable(schoolID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE school_id = ? AND active = 1 AND stock = 0
	  ORDER BY name, size
	`, schoolID)
	return out, err
}

// ListMeasurable returns the yomber-composer list: active products of
// the school whose garment type takes custom measurements.
func (r *ProductRepo) ListMeasurable(schoolID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT p.id, p.school_id, p.garment_type_id, p.name,
	         COALESCE(p.size,'') AS size, COALESCE(p.color,'') AS color, COALESCE(p.gender,'') AS gender,
	         p.price, p.stock, p.active, p.created_at, COALESCE(p.updated_at,'') AS updated_at
	  FROM products p
	  JOIN garment_types g ON g.id = p.garment_type_id
	  WHERE p.school_id = ? AND p.active = 1 AND g.has_custom_measurements = 1
	  ORDER BY p.name, p.size
	`, schoolID)
	return out, err
}

func (r *ProductRepo) Search(q, schoolID string, limit, offset int) ([]domain.Product, error) {
	where := `active = 1`
	args := []any{}
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(color) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if schoolID != "" {
		where += ` AND school_id = ?`
		args = append(args, schoolID)
	}
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE `+where+`
	  ORDER BY name, size
	  LIMIT ? OFFSET ?`, args...)
	return out, err
}

func (r *ProductRepo) Upsert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, school_id, garment_type_id, name, size, color, gender, price, stock, active, updated_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    school_id = excluded.school_id, garment_type_id = excluded.garment_type_id,
	    name = excluded.name, size = excluded.size, color = excluded.color,
	    gender = excluded.gender, price = excluded.price, stock = excluded.stock,
	    active = excluded.active, updated_at = CURRENT_TIMESTAMP
	`, p.ID, p.SchoolID, p.GarmentTypeID, p.Name, p.Size, p.Color, p.Gender, p.Price, p.Stock, p.Active)
	return err
}

// SetStock adjusts the cached stock for one product (admin correction
// between syncs; the backend remains the source of truth).
func (r *ProductRepo) SetStock(productID string, stock int) error {
	_, err := r.db.Exec(`UPDATE products SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, stock, productID)
	return err
}

// StockRow feeds the admin stock page.
type StockRow struct {
	ProductID  string `db:"product_id"`
	Name       string `db:"name"`
	Size       string `db:"size"`
	SchoolName string `db:"school_name"`
	Stock      int    `db:"stock"`
}

func (r *ProductRepo) ListStock() ([]StockRow, error) {
	var rows []StockRow
	err := r.db.Select(&rows, `
	  SELECT p.id AS product_id, p.name, COALESCE(p.size,'') AS size,
	         s.name AS school_name, p.stock
	  FROM products p
	  JOIN schools s ON s.id = p.school_id
	  ORDER BY s.name, p.name, p.size
	`)
	return rows, err
}
