package handlers

import (
	"github.com/jmoiron/sqlx"

	"mandi/internal/cache"
	"mandi/internal/repos"
	"mandi/internal/services"
)

type Deps struct {
	BillHandler      *BillHandler
	VegetableHandler *VegetableHandler
	ProviderHandler  *ProviderHandler
	SignerHandler    *SignerHandler
	CacheHandler     *CacheHandler
}

func NewDeps(db *sqlx.DB, c *cache.Cache) *Deps {
	vegRepo := repos.NewVegetableRepo(db)
	billRepo := repos.NewBillRepo(db)
	provRepo := repos.NewProviderRepo(db)
	signRepo := repos.NewSignerRepo(db)

	catSvc := services.NewCatalogueService(vegRepo, c)
	billSvc := services.NewBillService(billRepo, provRepo, catSvc, c)
	vegSvc := services.NewVegetableService(vegRepo, c)
	provSvc := services.NewProviderService(provRepo, c)
	signSvc := services.NewSignerService(signRepo, c)

	return &Deps{
		BillHandler:      &BillHandler{Bills: billSvc},
		VegetableHandler: &VegetableHandler{Veg: vegSvc},
		ProviderHandler:  &ProviderHandler{Providers: provSvc},
		SignerHandler:    &SignerHandler{Signers: signSvc},
		CacheHandler:     &CacheHandler{Cache: c},
	}
}
