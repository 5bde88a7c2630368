package usecase

import "context"

// AccountUsecase defines account-wide operations.
type AccountUsecase interface {
	// ResetAccount hard-deletes the user's shops and transactions. Irreversible.
	ResetAccount(ctx context.Context, userID string) (*CascadeResult, error)
}
