package intro

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-arena-fps/internal/defs"
)

func TestFetchParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/boss-intro" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req introRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Level != 3 || req.NewGamePlus {
			t.Errorf("unexpected request payload: %+v", req)
		}
		json.NewEncoder(w).Encode(Intro{Name: "  Gravemind ", Line: "Kneel.\n"})
	}))
	defer srv.Close()

	in, err := NewClient(srv.URL).Fetch(3, false)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if in.Name != "Gravemind" || in.Line != "Kneel." {
		t.Fatalf("payload not trimmed: %+v", in)
	}
}

func TestFetchFailures(t *testing.T) {
	// Empty payload is unusable.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Intro{})
	}))
	defer srv.Close()
	if _, err := NewClient(srv.URL).Fetch(1, false); err == nil {
		t.Fatal("empty payload must be an error")
	}

	// Non-200 status.
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer bad.Close()
	if _, err := NewClient(bad.URL).Fetch(1, false); err == nil {
		t.Fatal("HTTP 500 must be an error")
	}

	// Unconfigured client.
	if _, err := NewClient("").Fetch(1, false); err == nil {
		t.Fatal("unconfigured client must be an error")
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	defs.ResetToDefaults()
	def := defs.BossLibrary[5]
	a := Fallback(def)
	b := Fallback(def)
	if a != b {
		t.Fatal("fallback must be deterministic")
	}
	if a.Name == "" || a.Line == "" {
		t.Fatal("fallback must be usable")
	}
}
