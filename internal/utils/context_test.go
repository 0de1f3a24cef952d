// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ask-board/models"
)

func TestContextKeyString(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetIdentityFromContext(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Authenticated("alice"))

	identity := GetIdentityFromContext(ctx)
	if !identity.Is("alice") {
		t.Errorf("expected alice, got %+v", identity)
	}
}

func TestGetIdentityFromContext_MissingIsGuest(t *testing.T) {
	identity := GetIdentityFromContext(context.Background())
	if identity.IsAuthenticated() {
		t.Errorf("expected guest, got %+v", identity)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "alice")

	if GetIdentityFromContext(ctx).IsAuthenticated() {
		t.Error("expected guest for a value of the wrong type")
	}
}

func TestGetSessionIDFromContext(t *testing.T) {
	if _, ok := GetSessionIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
	if _, ok := GetSessionIDFromContext(WithSessionID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty session id")
	}

	id, ok := GetSessionIDFromContext(WithSessionID(context.Background(), "abc"))
	if !ok || id != "abc" {
		t.Errorf("expected abc, got %q (ok=%v)", id, ok)
	}
}
