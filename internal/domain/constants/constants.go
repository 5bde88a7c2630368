// Package constants holds configuration switch values shared by infra providers.
package constants

// Ledger store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMemory    = "memory"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Batch bounds per store driver.
const (
	// FirestoreMaxBatchOperations is the write limit of a single Firestore commit.
	FirestoreMaxBatchOperations = 500
	// PostgresMaxBatchOperations caps the statements grouped in one database transaction.
	PostgresMaxBatchOperations = 1000
)
