package testutil

import (
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
	domaincart "github.com/tradeport/tradeport-ui-api/internal/domain/cart"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

// Builders for common test fixtures. Each returns a ready-to-use value;
// mutate fields on the result for variations.

// NewAccount returns a retailer account record as the user backend shapes it.
func NewAccount() domainauth.Account {
	return domainauth.Account{
		LoginID:  "retailer@example.com",
		UserID:   "user-1",
		UserName: "Test Retailer",
		Role:     0,
		PhoneNo:  "1234567890",
		IsActive: true,
	}
}

// NewAuthenticatedSession returns a logged-in retailer session.
func NewAuthenticatedSession(id string) domainauth.Session {
	s, err := domainauth.Login(domainauth.EmptySession(), "test-token", NewAccount())
	if err != nil {
		panic(err) // fixture account always carries a mapped role
	}
	s.ID = id
	return s
}

// NewProduct returns a minimal cart product reference.
func NewProduct(id string, price float64) domaincart.Product {
	return domaincart.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: price,
	}
}

// NewCatalogProduct returns a product as the product backend shapes it.
func NewCatalogProduct(id string) ports.Product {
	return ports.Product{
		ProductID:      id,
		ProductName:    "Product " + id,
		Category:       "hardware",
		RetailPrice:    15,
		WholesalePrice: 10,
		Quantity:       100,
		ManufacturerID: "mfr-1",
	}
}
