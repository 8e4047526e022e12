package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mandi/internal/cache"
	"mandi/internal/domain"
	"mandi/internal/repos"
	"mandi/internal/validate"
)

// BillService coordinates the bill-creation pipeline: validate, reconcile
// the catalogue, price, persist, then invalidate dependent cache entries.
type BillService struct {
	Bills     *repos.BillRepo
	Providers *repos.ProviderRepo
	Catalogue *CatalogueService
	Cache     *cache.Cache
}

func NewBillService(bills *repos.BillRepo, providers *repos.ProviderRepo, cat *CatalogueService, c *cache.Cache) *BillService {
	return &BillService{Bills: bills, Providers: providers, Catalogue: cat, Cache: c}
}

// BillInput is the caller-supplied shape for a new bill. Item ids and totals
// are ignored if present; they are always computed server-side.
type BillInput struct {
	ProviderID string            `json:"providerId"`
	Items      []domain.BillItem `json:"items"`
	Signer     string            `json:"signer"`
	Date       string            `json:"date"`
}

// Create runs the full pipeline. Catalogue rows created during
// reconciliation are kept even if the bill insert later fails: vegetables
// are append-only reference data and their existence is independent of any
// one bill.
func (s *BillService) Create(in BillInput) (domain.Bill, error) {
	provider, billDate, verr, err := s.validateInput(in)
	if err != nil {
		return domain.Bill{}, err
	}
	if !verr.Ok() {
		return domain.Bill{}, verr
	}

	resolved, err := s.Catalogue.Reconcile(in.Items)
	if err != nil {
		return domain.Bill{}, err
	}

	lines := make([]domain.BillItem, len(resolved))
	for i, r := range resolved {
		lines[i] = r.BillItem
	}
	lines, total := PriceItems(lines)

	bill := domain.Bill{
		ID:           uuid.NewString(),
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Signer:       strings.TrimSpace(in.Signer),
		Items:        lines,
		Total:        total,
		Date:         billDate,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Bills.Insert(bill); err != nil {
		return domain.Bill{}, err
	}

	// Only after the insert committed; a failed write must never evict a
	// still-correct listing.
	s.Cache.Delete(keyBills)
	return bill, nil
}

func (s *BillService) validateInput(in BillInput) (domain.Provider, string, *domain.ValidationError, error) {
	verr := &domain.ValidationError{}

	var provider domain.Provider
	if strings.TrimSpace(in.ProviderID) == "" {
		verr.Add("providerId", "required")
	} else {
		p, err := s.Providers.Get(in.ProviderID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			verr.Add("providerId", "unknown provider")
		case err != nil:
			// Store failure, not caller error; report it as such.
			return domain.Provider{}, "", nil, err
		default:
			provider = p
		}
	}

	if len(in.Items) == 0 {
		verr.Add("items", "at least one item required")
	}
	for i, it := range in.Items {
		name, ok := validate.Name(it.Name)
		if !ok {
			verr.Add(fmt.Sprintf("items[%d].name", i), "required, at most 64 characters")
		}
		// Reconciliation must see the same canonical name the explicit
		// create path stores, or " Potato " and "Potato" become two rows.
		in.Items[i].Name = name
		if !validate.Quantity(it.Quantity) {
			verr.Add(fmt.Sprintf("items[%d].quantity", i), "must be positive")
		}
		if !validate.Money(it.Price) {
			verr.Add(fmt.Sprintf("items[%d].price", i), "must be positive")
		}
	}

	billDate := strings.TrimSpace(in.Date)
	if billDate == "" {
		billDate = time.Now().UTC().Format(time.RFC3339)
	} else if !validDate(billDate) {
		verr.Add("date", "must be RFC3339 or YYYY-MM-DD")
	}
	return provider, billDate, verr, nil
}

func validDate(s string) bool {
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Get returns one bill, cache-aside under its own key.
func (s *BillService) Get(id string) (domain.Bill, error) {
	if v, ok := s.Cache.Get(billKey(id)); ok {
		if b, ok := v.(domain.Bill); ok {
			return b, nil
		}
	}
	b, err := s.Bills.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Bill{}, &domain.NotFoundError{Entity: "bill", ID: id}
	}
	if err != nil {
		return domain.Bill{}, err
	}
	s.Cache.Set(billKey(id), b)
	return b, nil
}

// List returns all bills newest-first, cache-aside under the shared listing key.
func (s *BillService) List() ([]domain.Bill, error) {
	if v, ok := s.Cache.Get(keyBills); ok {
		if bills, ok := v.([]domain.Bill); ok {
			return bills, nil
		}
	}
	bills, err := s.Bills.ListAll()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(keyBills, bills)
	return bills, nil
}

// DeleteByProvider is the administrative bulk escape hatch. Single-bill cache
// entries for the removed rows are evicted by prefix since their ids are gone
// from the store by the time we invalidate.
func (s *BillService) DeleteByProvider(providerName string) (int64, error) {
	n, err := s.Bills.DeleteByProvider(providerName)
	if err != nil {
		return 0, err
	}
	stale := []string{keyBills}
	for _, k := range s.Cache.Keys() {
		if strings.HasPrefix(k, billKeyPrefix) {
			stale = append(stale, k)
		}
	}
	s.Cache.Delete(stale...)
	return n, nil
}
