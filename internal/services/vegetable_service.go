package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"mandi/internal/cache"
	"mandi/internal/domain"
	"mandi/internal/repos"
	"mandi/internal/validate"
)

// VegetableService covers the explicit catalogue endpoints. First-sight
// creation during bill submission lives in CatalogueService instead.
type VegetableService struct {
	Veg   *repos.VegetableRepo
	Cache *cache.Cache
}

func NewVegetableService(veg *repos.VegetableRepo, c *cache.Cache) *VegetableService {
	return &VegetableService{Veg: veg, Cache: c}
}

type VegetableInput struct {
	Name          string   `json:"name"`
	IsAvailable   *bool    `json:"isAvailable"`
	HasFixedPrice bool     `json:"hasFixedPrice"`
	FixedPrice    *float64 `json:"fixedPrice"`
}

// VegetablePatch carries only the fields the caller wants changed.
type VegetablePatch struct {
	Name          *string  `json:"name"`
	IsAvailable   *bool    `json:"isAvailable"`
	HasFixedPrice *bool    `json:"hasFixedPrice"`
	FixedPrice    *float64 `json:"fixedPrice"`
}

func (s *VegetableService) List() ([]domain.Vegetable, error) {
	if v, ok := s.Cache.Get(keyVegetables); ok {
		if veg, ok := v.([]domain.Vegetable); ok {
			return veg, nil
		}
	}
	veg, err := s.Veg.List()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(keyVegetables, veg)
	return veg, nil
}

func (s *VegetableService) Create(in VegetableInput) (domain.Vegetable, error) {
	verr := &domain.ValidationError{}
	name, ok := validate.Name(in.Name)
	if !ok {
		verr.Add("name", "required, at most 64 characters")
	}
	checkFixedPrice(verr, in.HasFixedPrice, in.FixedPrice)
	if !verr.Ok() {
		return domain.Vegetable{}, verr
	}

	v := domain.Vegetable{
		ID:            uuid.NewString(),
		Name:          name,
		IsAvailable:   true,
		HasFixedPrice: in.HasFixedPrice,
	}
	if in.IsAvailable != nil {
		v.IsAvailable = *in.IsAvailable
	}
	if in.HasFixedPrice {
		v.FixedPrice = in.FixedPrice
	}
	if err := s.Veg.Insert(v); err != nil {
		if repos.IsUniqueViolation(err) {
			return domain.Vegetable{}, &domain.DuplicateError{Entity: "vegetable", Name: name}
		}
		return domain.Vegetable{}, err
	}
	s.Cache.Delete(keyVegetables)
	return v, nil
}

func (s *VegetableService) Patch(id string, p VegetablePatch) (domain.Vegetable, error) {
	v, err := s.Veg.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Vegetable{}, &domain.NotFoundError{Entity: "vegetable", ID: id}
	}
	if err != nil {
		return domain.Vegetable{}, err
	}

	verr := &domain.ValidationError{}
	if p.Name != nil {
		name, ok := validate.Name(*p.Name)
		if !ok {
			verr.Add("name", "required, at most 64 characters")
		}
		v.Name = name
	}
	if p.IsAvailable != nil {
		v.IsAvailable = *p.IsAvailable
	}
	if p.HasFixedPrice != nil {
		v.HasFixedPrice = *p.HasFixedPrice
	}
	if p.FixedPrice != nil {
		v.FixedPrice = p.FixedPrice
	}
	// The invariant holds on the merged row, whichever side the patch touched.
	checkFixedPrice(verr, v.HasFixedPrice, v.FixedPrice)
	if !verr.Ok() {
		return domain.Vegetable{}, verr
	}
	if !v.HasFixedPrice {
		v.FixedPrice = nil
	}

	if err := s.Veg.Update(v); err != nil {
		if repos.IsUniqueViolation(err) {
			return domain.Vegetable{}, &domain.DuplicateError{Entity: "vegetable", Name: v.Name}
		}
		return domain.Vegetable{}, err
	}
	s.Cache.Delete(keyVegetables)
	return v, nil
}

func checkFixedPrice(verr *domain.ValidationError, hasFixed bool, price *float64) {
	if hasFixed && (price == nil || !validate.Money(*price)) {
		verr.Add("fixedPrice", "required and positive when hasFixedPrice is true")
	}
}
