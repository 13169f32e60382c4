package services

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

// UserLister restreint l'Admin SDK Firebase à l'export des comptes,
// pour pouvoir le substituer dans les tests.
type UserLister interface {
	ListUsers(ctx context.Context, max int) ([]*auth.ExportedUserRecord, error)
}

type firebaseUsers struct {
	client *auth.Client
}

func NewFirebaseUsers(client *auth.Client) UserLister {
	return &firebaseUsers{client: client}
}

// ListUsers parcourt l'export Firebase et s'arrête à max comptes.
// Pas de pagination au-delà : les comptes suivants sont ignorés.
func (f *firebaseUsers) ListUsers(ctx context.Context, max int) ([]*auth.ExportedUserRecord, error) {
	var records []*auth.ExportedUserRecord

	it := f.client.Users(ctx, "")
	for len(records) < max {
		record, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
