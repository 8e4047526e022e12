package services

import (
	"github.com/google/uuid"

	"mandi/internal/cache"
	"mandi/internal/domain"
	"mandi/internal/repos"
	"mandi/internal/validate"
)

type SignerService struct {
	Signers *repos.SignerRepo
	Cache   *cache.Cache
}

func NewSignerService(r *repos.SignerRepo, c *cache.Cache) *SignerService {
	return &SignerService{Signers: r, Cache: c}
}

type SignerInput struct {
	Name string `json:"name"`
}

func (s *SignerService) List() ([]domain.Signer, error) {
	if v, ok := s.Cache.Get(keySigners); ok {
		if ss, ok := v.([]domain.Signer); ok {
			return ss, nil
		}
	}
	ss, err := s.Signers.List()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(keySigners, ss)
	return ss, nil
}

func (s *SignerService) Create(in SignerInput) (domain.Signer, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		verr := &domain.ValidationError{}
		verr.Add("name", "required, at most 64 characters")
		return domain.Signer{}, verr
	}

	sg := domain.Signer{ID: uuid.NewString(), Name: name}
	if err := s.Signers.Insert(sg); err != nil {
		if repos.IsUniqueViolation(err) {
			return domain.Signer{}, &domain.DuplicateError{Entity: "signer", Name: name}
		}
		return domain.Signer{}, err
	}
	s.Cache.Delete(keySigners)
	return sg, nil
}
