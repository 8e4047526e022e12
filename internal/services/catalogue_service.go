package services

import (
	"strings"

	"github.com/google/uuid"

	"mandi/internal/cache"
	"mandi/internal/domain"
	"mandi/internal/repos"
)

// CatalogueService reconciles bill line items against the vegetable
// catalogue, creating rows for names it has never seen.
type CatalogueService struct {
	Veg   *repos.VegetableRepo
	Cache *cache.Cache
}

func NewCatalogueService(veg *repos.VegetableRepo, c *cache.Cache) *CatalogueService {
	return &CatalogueService{Veg: veg, Cache: c}
}

// ResolvedItem is a line item decorated with its catalogue row's flags.
// Price holds the effective unit price: the caller's, unless the catalogue
// entry carries a fixed price, which always wins.
type ResolvedItem struct {
	domain.BillItem
	IsAvailable   bool
	HasFixedPrice bool
	FixedPrice    *float64
}

// Reconcile maps each input item to its catalogue row by exact name match,
// inserting one new row per distinct unseen name in a single batch. New rows
// default to available with no fixed price. Safe to retry and safe under
// concurrent submissions of the same new name: the insert ignores conflicts
// on the UNIQUE(name) constraint and the follow-up read picks up whichever
// writer won.
func (s *CatalogueService) Reconcile(items []domain.BillItem) ([]ResolvedItem, error) {
	names := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.Name] {
			seen[it.Name] = true
			names = append(names, it.Name)
		}
	}

	byName := make(map[string]domain.Vegetable, len(names))
	rows, err := s.Veg.ListByNames(names)
	if err != nil {
		return nil, err
	}
	for _, v := range rows {
		if !seen[v.Name] {
			// Lookup handed back a row we never asked for: the catalogue is
			// corrupt (e.g. a collation rewrite), not a user mistake.
			return nil, &domain.ConflictError{Want: strings.Join(names, ", "), Got: v.Name}
		}
		byName[v.Name] = v
	}

	var unseen []string
	for _, n := range names {
		if _, ok := byName[n]; !ok {
			unseen = append(unseen, n)
		}
	}
	if len(unseen) > 0 {
		fresh := make([]domain.Vegetable, len(unseen))
		for i, n := range unseen {
			fresh[i] = domain.Vegetable{ID: uuid.NewString(), Name: n, IsAvailable: true}
		}
		if err := s.Veg.InsertBatchIgnore(fresh); err != nil {
			return nil, err
		}
		// New catalogue rows exist regardless of how the enclosing bill
		// fares, so the vegetables listing is stale from this point on.
		s.Cache.Delete(keyVegetables)
		// Re-read instead of trusting our inserts: a concurrent submission may
		// have created some of these names first, and its rows are the
		// authoritative ones.
		created, err := s.Veg.ListByNames(unseen)
		if err != nil {
			return nil, err
		}
		for _, v := range created {
			if !seen[v.Name] {
				return nil, &domain.ConflictError{Want: strings.Join(unseen, ", "), Got: v.Name}
			}
			byName[v.Name] = v
		}
	}

	out := make([]ResolvedItem, len(items))
	for i, it := range items {
		v, ok := byName[it.Name]
		if !ok {
			return nil, &domain.ConflictError{Want: it.Name, Got: ""}
		}
		it.VegetableID = v.ID
		if v.HasFixedPrice && v.FixedPrice != nil {
			it.Price = *v.FixedPrice
		}
		out[i] = ResolvedItem{
			BillItem:      it,
			IsAvailable:   v.IsAvailable,
			HasFixedPrice: v.HasFixedPrice,
			FixedPrice:    v.FixedPrice,
		}
	}
	return out, nil
}
