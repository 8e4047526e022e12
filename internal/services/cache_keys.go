package services

// Cache keys shared by the read endpoints and the write-path invalidation.
const (
	keyBills      = "bills"
	keyVegetables = "vegetables"
	keyProviders  = "providers"
	keySigners    = "signers"

	billKeyPrefix = "bill:"
)

func billKey(id string) string { return billKeyPrefix + id }
