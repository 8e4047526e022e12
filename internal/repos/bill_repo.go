package repos

import (
	"mandi/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BillRepo struct{ db *sqlx.DB }

func NewBillRepo(db *sqlx.DB) *BillRepo { return &BillRepo{db: db} }

// Insert writes the bill header and all line items in one transaction.
// Either the whole bill lands or none of it does.
func (r *BillRepo) Insert(b domain.Bill) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO bills(id, provider_id, provider_name, signer, total, bill_date, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.ProviderID, b.ProviderName, b.Signer, b.Total, b.Date, b.CreatedAt); err != nil {
		return err
	}
	for i, it := range b.Items {
		if _, err := tx.Exec(`
		  INSERT INTO bill_items(bill_id, seq, vegetable_id, name, quantity, price, item_total)
		  VALUES(?, ?, ?, ?, ?, ?, ?)
		`, b.ID, i, it.VegetableID, it.Name, it.Quantity, it.Price, it.ItemTotal); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const billCols = `
  id, provider_id, provider_name, COALESCE(signer,'') AS signer,
  total, bill_date, created_at`

func (r *BillRepo) Get(id string) (domain.Bill, error) {
	var b domain.Bill
	if err := r.db.Get(&b, `SELECT`+billCols+` FROM bills WHERE id = ?`, id); err != nil {
		return domain.Bill{}, err
	}
	items, err := r.itemsFor([]string{id})
	if err != nil {
		return domain.Bill{}, err
	}
	b.Items = items[id]
	if b.Items == nil {
		b.Items = []domain.BillItem{}
	}
	return b, nil
}

// ListAll returns every bill, newest transaction date first, items included.
func (r *BillRepo) ListAll() ([]domain.Bill, error) {
	bills := []domain.Bill{}
	if err := r.db.Select(&bills, `
	  SELECT`+billCols+` FROM bills ORDER BY datetime(bill_date) DESC, created_at DESC
	`); err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return bills, nil
	}
	ids := make([]string, len(bills))
	for i, b := range bills {
		ids[i] = b.ID
	}
	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		bills[i].Items = items[bills[i].ID]
		if bills[i].Items == nil {
			bills[i].Items = []domain.BillItem{}
		}
	}
	return bills, nil
}

func (r *BillRepo) itemsFor(billIDs []string) (map[string][]domain.BillItem, error) {
	type row struct {
		BillID string `db:"bill_id"`
		domain.BillItem
	}
	query, args, err := sqlx.In(`
	  SELECT bill_id, vegetable_id, name, quantity, price, item_total
	  FROM bill_items WHERE bill_id IN (?) ORDER BY bill_id, seq
	`, billIDs)
	if err != nil {
		return nil, err
	}
	var rows []row
	if err := r.db.Select(&rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	out := make(map[string][]domain.BillItem, len(billIDs))
	for _, rw := range rows {
		out[rw.BillID] = append(out[rw.BillID], rw.BillItem)
	}
	return out, nil
}

// DeleteByProvider removes every bill recorded against the named provider.
// Line items go with them via ON DELETE CASCADE.
func (r *BillRepo) DeleteByProvider(providerName string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM bills WHERE provider_name = ?`, providerName)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
