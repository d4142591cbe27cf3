package repositories

import (
	"database/sql"
	"time"

	"motoroutes/internal/domain"
)

// Rider is a registered account. Passwords are stored as bcrypt hashes only.
type Rider struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// RiderRepository wraps DB access for rider accounts.
type RiderRepository struct {
	DB *sql.DB
}

func (r RiderRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`CREATE TABLE IF NOT EXISTS riders (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL
	)`)
	return err
}

func (r RiderRepository) GetByEmail(email string) (Rider, error) {
	var out Rider
	err := r.DB.QueryRow(`SELECT id, name, email, password_hash FROM riders WHERE email = ?`, email).
		Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash)
	if err == sql.ErrNoRows {
		return out, domain.NotFoundError{Resource: "rider"}
	}
	return out, err
}

func (r RiderRepository) Create(name, email, passwordHash string) (Rider, error) {
	res, err := r.DB.Exec(`INSERT INTO riders (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		name, email, passwordHash, time.Now())
	if err != nil {
		return Rider{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Rider{}, err
	}
	return Rider{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
}
