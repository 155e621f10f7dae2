package repository

import (
	"context"
	"testing"

	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/user/entity"
)

func TestCreateAndLookup(t *testing.T) {
	repo := NewUserRepository()

	created, err := repo.Create(context.Background(), entity.User{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	byID, err := repo.GetByID(context.Background(), created.ID)
	if err != nil || byID.Username != "admin" {
		t.Fatalf("GetByID: %v %+v", err, byID)
	}
	byName, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil || byName.ID != created.ID {
		t.Fatalf("GetByUsername: %v %+v", err, byName)
	}

	if _, err := repo.GetByUsername(context.Background(), "ghost"); err != storage.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	repo := NewUserRepository()

	if _, err := repo.Create(context.Background(), entity.User{Username: "admin"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(context.Background(), entity.User{Username: "admin"}); err != storage.ErrConditionFailed {
		t.Fatalf("expected duplicate username to be rejected, got %v", err)
	}
}
