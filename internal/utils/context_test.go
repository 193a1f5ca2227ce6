package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-catalog/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	want := models.User{UserID: 42, Username: "alice", Email: "alice@example.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be found in context")
	}
	if got.Username != want.Username || got.UserID != want.UserID {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}
