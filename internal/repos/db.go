package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog data if the cache is empty (lets the POS run with
	// no backend configured)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure operator accounts exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Schools (tenants)
CREATE TABLE IF NOT EXISTS schools(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  city TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_schools_name_nocase ON schools(LOWER(name));

-- Garment types
CREATE TABLE IF NOT EXISTS garment_types(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  has_custom_measurements INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Cached products (prices in integer pesos; stock as last synced)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  school_id TEXT NOT NULL REFERENCES schools(id) ON DELETE CASCADE,
  garment_type_id TEXT NOT NULL REFERENCES garment_types(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  size TEXT,
  color TEXT,
  gender TEXT,
  price INTEGER NOT NULL CHECK (price >= 0),
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_school  ON products(school_id);
CREATE INDEX IF NOT EXISTS idx_products_garment ON products(garment_type_id);
CREATE INDEX IF NOT EXISTS idx_products_name    ON products(LOWER(name));

-- Cached clients
CREATE TABLE IF NOT EXISTS clients(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  document TEXT,
  phone TEXT,
  email TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_clients_name     ON clients(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_clients_document ON clients(document);

-- Submission journal: one row per confirmed backend order. Partial
-- prefixes of a failed multi-school submission are journaled too.
CREATE TABLE IF NOT EXISTS submissions(
  id TEXT PRIMARY KEY,
  batch_id TEXT NOT NULL,
  school_id TEXT NOT NULL,
  school_name TEXT NOT NULL,
  client_id TEXT NOT NULL,
  backend_order_id TEXT NOT NULL,
  order_code TEXT NOT NULL,
  total INTEGER NOT NULL,
  advance INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_submissions_batch      ON submissions(batch_id);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);

-- Storefront favorites (per anonymous session)
CREATE TABLE IF NOT EXISTS favorites(
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(session_id, product_id)
);

-- Operators & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM schools`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo schools/garment types/products/clients")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO schools(id,name,city) VALUES
	  ('col-sanjose','Colegio San José','Medellín'),
	  ('liceo-norte','Liceo del Norte','Medellín'),
	  ('inst-belen','Instituto Belén','Envigado')`)

	tx.MustExec(`INSERT INTO garment_types(id,name,has_custom_measurements) VALUES
	  ('camisa','Camisa',0),
	  ('pantalon','Pantalón',0),
	  ('falda','Falda',0),
	  ('yomber','Yomber',1),
	  ('chaqueta','Chaqueta',0)`)

	tx.MustExec(`INSERT INTO products(id,school_id,garment_type_id,name,size,color,gender,price,stock) VALUES
	  ('sj-camisa-10','col-sanjose','camisa','Camisa blanca manga corta','10','blanco','U',38000,0),
	  ('sj-camisa-12','col-sanjose','camisa','Camisa blanca manga corta','12','blanco','U',40000,6),
	  ('sj-pant-10','col-sanjose','pantalon','Pantalón azul oscuro','10','azul','M',55000,0),
	  ('sj-yomber-8','col-sanjose','yomber','Yomber cuadros','8','azul/verde','F',95000,0),
	  ('ln-camisa-12','liceo-norte','camisa','Camisa polo gris','12','gris','U',42000,0),
	  ('ln-falda-10','liceo-norte','falda','Falda a cuadros','10','gris','F',48000,3),
	  ('ln-yomber-10','liceo-norte','yomber','Yomber institucional','10','gris','F',98000,0),
	  ('ib-chaq-12','inst-belen','chaqueta','Chaqueta institucional','12','verde','U',82000,0)`)

	tx.MustExec(`INSERT INTO clients(id,name,document,phone,email) VALUES
	  ('cl-0001','María Restrepo','43120456','3001234567','maria.restrepo@example.com'),
	  ('cl-0002','Carlos Zapata','71456789','3017654321','carlos.zapata@example.com'),
	  ('cl-0003','Luisa Fernanda Gómez','1035678901','3129876543','')`)

	return tx.Commit()
}

// seedUsers ensures one USER and one ADMIN operator exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-vendedor", "vendedor@uniformes.test", "Vendedor", "USER", "Passw0rd!"),
		mk("u-admin", "admin@uniformes.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
