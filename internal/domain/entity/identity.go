// Package entity contains the core business objects of the project.
package entity

// Identity is the verified caller of a request as reported by the identity provider.
type Identity struct {
	UID   string `json:"uid"`   // Stable subject of the verified credential.
	Email string `json:"email"` // Email claim, empty when the provider omits it.
	Name  string `json:"name"`  // Display name claim, empty when the provider omits it.
}

// Collection names the ledger store collection (or table) an entity lives in.
type Collection string

const (
	CollectionUsers        Collection = "users"
	CollectionShops        Collection = "shops"
	CollectionProducts     Collection = "products"
	CollectionTransactions Collection = "transactions"
)
