package repository

import (
	"context"
	"time"

	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/quote/entity"
)

type QuoteRepository struct {
	quotes *storage.Collection[entity.QuoteRequest]
}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{quotes: storage.NewCollection[entity.QuoteRequest]()}
}

func (r *QuoteRepository) Create(ctx context.Context, quote entity.QuoteRequest) (entity.QuoteRequest, error) {
	created := r.quotes.Insert(func(id int64) entity.QuoteRequest {
		quote.ID = id
		quote.CreatedAt = time.Now()
		return quote
	})
	return created, nil
}

func (r *QuoteRepository) List(ctx context.Context) ([]entity.QuoteRequest, error) {
	return r.quotes.List(nil), nil
}
