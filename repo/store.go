// Package repo provides session storage keyed by Telegram user ID.
package repo

import (
	"context"

	"insurancebot/model"
)

// SessionStore keeps at most one in-progress application per user.
// Get returns model.ErrSessionNotFound when the user has no session;
// Put overwrites any existing session for the same user.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*model.Application, error)
	Put(ctx context.Context, app *model.Application) error
	Delete(ctx context.Context, userID int64) error
}
