package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestSyncUserCreatesAndUpdates(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	created, err := svc.SyncUser("ext-1", "salem@example.com", "salem")
	if err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}
	if created.ID == "" || created.ExternalID != "ext-1" || created.Username != "salem" {
		t.Fatalf("unexpected created user: %+v", created)
	}

	updated, err := svc.SyncUser("ext-1", "salem@new.example.com", "salem-updated")
	if err != nil {
		t.Fatalf("SyncUser update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("sync must keep one record per external id: %s vs %s", updated.ID, created.ID)
	}
	if updated.Username != "salem-updated" || updated.Email == nil || *updated.Email != "salem@new.example.com" {
		t.Fatalf("fields not refreshed: %+v", updated)
	}
}

func TestSyncUserMissingExternalID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.SyncUser("", "x@example.com", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSyncUserDuplicateKeyMapsToConflict(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.upsertErr = gorm.ErrDuplicatedKey
	svc := NewUserService(userRepo)

	if _, err := svc.SyncUser("ext-1", "x@example.com", "x"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGetByExternalIDUnsynced(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.GetByExternalID("never-seen"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
