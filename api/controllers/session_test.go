package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkoval-dev/bookmarket-backend/internal/session"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
)

func TestSessionCurrentWhenSignedOut(t *testing.T) {
	handler := SessionCurrent(session.NewSlot(nil))

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	data := decodeData(t, w)
	if data["authenticated"] != false {
		t.Fatalf("expected authenticated false but got %v", data["authenticated"])
	}
}

func TestSessionLoginMintsDemoIdentity(t *testing.T) {
	slot := session.NewSlot(nil)
	handler := SessionLogin(slot, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"role":"admin"}`))
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	data := decodeData(t, w)
	user := data["user"].(map[string]any)
	if user["role"] != "admin" {
		t.Fatalf("expected admin role but got %v", user["role"])
	}
	if slot.Role() != enums.SessionRoleAdmin {
		t.Fatalf("slot should hold the admin identity")
	}
}

func TestSessionLoginRejectsUnknownRole(t *testing.T) {
	handler := SessionLogin(session.NewSlot(nil), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"role":"root"}`))
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", w.Code)
	}
}

func TestSessionLogoutClearsSlot(t *testing.T) {
	slot := session.NewSlot(nil)
	slot.Login(enums.SessionRoleUser)
	handler := SessionLogout(slot)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	if _, ok := slot.Current(); ok {
		t.Fatalf("slot should be empty after logout")
	}
}
