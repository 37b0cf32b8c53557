package repo

import (
	"context"
	"fmt"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"insurancebot/model"
)

// FirebaseStore persists sessions under the "sessions" node of a Firebase
// Realtime Database, so a restarting process can resume dialogues.
type FirebaseStore struct {
	app    *firebase.App
	client *db.Client
}

// NewFirebaseStore creates a Firebase-backed session store.
func NewFirebaseStore(ctx context.Context, serviceAccountKeyPath, databaseURL string) (*FirebaseStore, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseStore{
		app:    app,
		client: client,
	}, nil
}

func (f *FirebaseStore) sessionRef(userID int64) *db.Ref {
	return f.client.NewRef("sessions").Child(strconv.FormatInt(userID, 10))
}

func (f *FirebaseStore) Get(ctx context.Context, userID int64) (*model.Application, error) {
	var app model.Application
	if err := f.sessionRef(userID).Get(ctx, &app); err != nil {
		return nil, fmt.Errorf("error reading session: %w", err)
	}
	// An absent node unmarshals into the zero value.
	if app.UserID == 0 {
		return nil, model.ErrSessionNotFound
	}
	return &app, nil
}

func (f *FirebaseStore) Put(ctx context.Context, app *model.Application) error {
	if err := f.sessionRef(app.UserID).Set(ctx, app); err != nil {
		return fmt.Errorf("error writing session: %w", err)
	}
	return nil
}

func (f *FirebaseStore) Delete(ctx context.Context, userID int64) error {
	if err := f.sessionRef(userID).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
