package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"uniformes/internal/domain"
)

// JournalRepo records confirmed backend orders locally. The journal is
// what the admin portal browses, and it is written as each per-school
// order confirms, so the prefix of a failed multi-school submission is
// never lost.
type JournalRepo struct{ db *sqlx.DB }

func NewJournalRepo(db *sqlx.DB) *JournalRepo { return &JournalRepo{db: db} }

func (r *JournalRepo) Record(batchID, clientID string, res domain.OrderResult, advance int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO submissions(id, batch_id, school_id, school_name, client_id, backend_order_id, order_code, total, advance)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), batchID, res.SchoolID, res.SchoolName, clientID, res.OrderID, res.OrderCode, res.Total, advance)
	return err
}

type SubmissionRow struct {
	ID             string `db:"id"`
	BatchID        string `db:"batch_id"`
	SchoolName     string `db:"school_name"`
	ClientID       string `db:"client_id"`
	BackendOrderID string `db:"backend_order_id"`
	OrderCode      string `db:"order_code"`
	Total          int64  `db:"total"`
	Advance        int64  `db:"advance"`
	CreatedAt      string `db:"created_at"`
}

func (r *JournalRepo) ListLatest(limit int) ([]SubmissionRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []SubmissionRow
	err := r.db.Select(&out, `
	  SELECT id, batch_id, school_name, client_id, backend_order_id, order_code, total, advance, created_at
	  FROM submissions
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *JournalRepo) ListByBatch(batchID string) ([]SubmissionRow, error) {
	var out []SubmissionRow
	err := r.db.Select(&out, `
	  SELECT id, batch_id, school_name, client_id, backend_order_id, order_code, total, advance, created_at
	  FROM submissions
	  WHERE batch_id = ?
	  ORDER BY datetime(created_at)
	`, batchID)
	return out, err
}
