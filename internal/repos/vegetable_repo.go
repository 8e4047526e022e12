package repos

import (
	"mandi/internal/domain"

	"github.com/jmoiron/sqlx"
)

type VegetableRepo struct{ db *sqlx.DB }

func NewVegetableRepo(db *sqlx.DB) *VegetableRepo { return &VegetableRepo{db: db} }

const vegetableCols = `
  id, name, is_available, has_fixed_price, fixed_price,
  COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at`

func (r *VegetableRepo) List() ([]domain.Vegetable, error) {
	out := []domain.Vegetable{}
	err := r.db.Select(&out, `SELECT`+vegetableCols+` FROM vegetables ORDER BY name`)
	return out, err
}

func (r *VegetableRepo) Get(id string) (domain.Vegetable, error) {
	var v domain.Vegetable
	err := r.db.Get(&v, `SELECT`+vegetableCols+` FROM vegetables WHERE id = ?`, id)
	return v, err
}

// ListByNames returns the catalogue rows whose name exactly matches one of
// names. Missing names are simply absent from the result.
func (r *VegetableRepo) ListByNames(names []string) ([]domain.Vegetable, error) {
	if len(names) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT`+vegetableCols+` FROM vegetables WHERE name IN (?)`, names)
	if err != nil {
		return nil, err
	}
	var out []domain.Vegetable
	err = r.db.Select(&out, r.db.Rebind(query), args...)
	return out, err
}

func (r *VegetableRepo) Insert(v domain.Vegetable) error {
	_, err := r.db.Exec(`
	  INSERT INTO vegetables(id, name, is_available, has_fixed_price, fixed_price)
	  VALUES(?, ?, ?, ?, ?)
	`, v.ID, v.Name, v.IsAvailable, v.HasFixedPrice, v.FixedPrice)
	return err
}

// InsertBatchIgnore inserts one row per vegetable, skipping any name that
// already exists. A concurrent writer landing the same name first is not an
// error; the caller re-reads by name afterwards and uses the winner's row.
func (r *VegetableRepo) InsertBatchIgnore(vs []domain.Vegetable) error {
	if len(vs) == 0 {
		return nil
	}
	_, err := r.db.NamedExec(`
	  INSERT INTO vegetables(id, name, is_available, has_fixed_price, fixed_price)
	  VALUES(:id, :name, :is_available, :has_fixed_price, :fixed_price)
	  ON CONFLICT(name) DO NOTHING
	`, vs)
	return err
}

func (r *VegetableRepo) Update(v domain.Vegetable) error {
	res, err := r.db.Exec(`
	  UPDATE vegetables
	  SET name = ?, is_available = ?, has_fixed_price = ?, fixed_price = ?,
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, v.Name, v.IsAvailable, v.HasFixedPrice, v.FixedPrice, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "vegetable", ID: v.ID}
	}
	return nil
}
