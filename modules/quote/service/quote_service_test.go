package service

import (
	"context"
	"testing"

	"github.com/YourPalZack/junk-t/modules/quote/dto"
	"github.com/YourPalZack/junk-t/modules/quote/repository"
)

func TestSubmitAssignsIncreasingIDs(t *testing.T) {
	svc := NewQuoteService(repository.NewQuoteRepository())

	req := &dto.SubmitQuoteRequest{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "2065550123",
		Description: "hot tub removal from the backyard",
	}

	first, appErr := svc.Submit(context.Background(), req)
	if appErr != nil {
		t.Fatalf("Submit: %v", appErr)
	}
	second, appErr := svc.Submit(context.Background(), req)
	if appErr != nil {
		t.Fatalf("Submit: %v", appErr)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be stamped")
	}

	quotes, appErr := svc.List(context.Background())
	if appErr != nil {
		t.Fatalf("List: %v", appErr)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quote requests, got %d", len(quotes))
	}
}
