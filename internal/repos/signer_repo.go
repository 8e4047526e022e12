package repos

import (
	"mandi/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SignerRepo struct{ db *sqlx.DB }

func NewSignerRepo(db *sqlx.DB) *SignerRepo { return &SignerRepo{db: db} }

func (r *SignerRepo) List() ([]domain.Signer, error) {
	out := []domain.Signer{}
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(created_at,'') AS created_at
	  FROM signers ORDER BY name
	`)
	return out, err
}

func (r *SignerRepo) Insert(s domain.Signer) error {
	_, err := r.db.Exec(`INSERT INTO signers(id, name) VALUES(?, ?)`, s.ID, s.Name)
	return err
}
