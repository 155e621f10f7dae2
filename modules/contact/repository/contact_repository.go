package repository

import (
	"context"
	"time"

	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/contact/entity"
)

type ContactRepository struct {
	contacts *storage.Collection[entity.Contact]
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{contacts: storage.NewCollection[entity.Contact]()}
}

func (r *ContactRepository) Create(ctx context.Context, contact entity.Contact) (entity.Contact, error) {
	created := r.contacts.Insert(func(id int64) entity.Contact {
		contact.ID = id
		contact.CreatedAt = time.Now()
		return contact
	})
	return created, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.Contact, error) {
	return r.contacts.List(nil), nil
}
