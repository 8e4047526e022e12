package services

import (
	"github.com/google/uuid"

	"mandi/internal/cache"
	"mandi/internal/domain"
	"mandi/internal/repos"
	"mandi/internal/validate"
)

type ProviderService struct {
	Providers *repos.ProviderRepo
	Cache     *cache.Cache
}

func NewProviderService(p *repos.ProviderRepo, c *cache.Cache) *ProviderService {
	return &ProviderService{Providers: p, Cache: c}
}

type ProviderInput struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

func (s *ProviderService) List() ([]domain.Provider, error) {
	if v, ok := s.Cache.Get(keyProviders); ok {
		if ps, ok := v.([]domain.Provider); ok {
			return ps, nil
		}
	}
	ps, err := s.Providers.List()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(keyProviders, ps)
	return ps, nil
}

func (s *ProviderService) Create(in ProviderInput) (domain.Provider, error) {
	verr := &domain.ValidationError{}
	name, ok := validate.Name(in.Name)
	if !ok {
		verr.Add("name", "required, at most 64 characters")
	}
	mobile, ok := validate.Mobile(in.Mobile)
	if !ok {
		verr.Add("mobile", "must be 7-15 digits")
	}
	address, ok := validate.Address(in.Address)
	if !ok {
		verr.Add("address", "at most 200 characters")
	}
	if !verr.Ok() {
		return domain.Provider{}, verr
	}

	p := domain.Provider{ID: uuid.NewString(), Name: name, Mobile: mobile, Address: address}
	if err := s.Providers.Insert(p); err != nil {
		if repos.IsUniqueViolation(err) {
			return domain.Provider{}, &domain.DuplicateError{Entity: "provider", Name: name}
		}
		return domain.Provider{}, err
	}
	s.Cache.Delete(keyProviders)
	return p, nil
}
