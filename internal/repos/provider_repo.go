package repos

import (
	"mandi/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProviderRepo struct{ db *sqlx.DB }

func NewProviderRepo(db *sqlx.DB) *ProviderRepo { return &ProviderRepo{db: db} }

func (r *ProviderRepo) List() ([]domain.Provider, error) {
	out := []domain.Provider{}
	err := r.db.Select(&out, `
	  SELECT id, name, mobile, COALESCE(address,'') AS address,
	         COALESCE(created_at,'') AS created_at
	  FROM providers ORDER BY name
	`)
	return out, err
}

func (r *ProviderRepo) Get(id string) (domain.Provider, error) {
	var p domain.Provider
	err := r.db.Get(&p, `
	  SELECT id, name, mobile, COALESCE(address,'') AS address,
	         COALESCE(created_at,'') AS created_at
	  FROM providers WHERE id = ?
	`, id)
	return p, err
}

func (r *ProviderRepo) Insert(p domain.Provider) error {
	_, err := r.db.Exec(`
	  INSERT INTO providers(id, name, mobile, address) VALUES(?, ?, ?, ?)
	`, p.ID, p.Name, p.Mobile, p.Address)
	return err
}
