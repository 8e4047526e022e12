package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"mandi/internal/domain"
)

func TestVegetableCreateAndPatch(t *testing.T) {
	app := newAPIApp(t)

	// Fixed-price invariant enforced at creation.
	resp, body := doJSON(t, app, "POST", "/api/vegetables", map[string]any{
		"name": "Potato", "hasFixedPrice": true,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 without fixedPrice, got %d body=%s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, "POST", "/api/vegetables", map[string]any{
		"name": "Potato", "hasFixedPrice": true, "fixedPrice": 2.50,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: got %d body=%s", resp.StatusCode, body)
	}
	var v domain.Vegetable
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatal(err)
	}
	if !v.IsAvailable || v.FixedPrice == nil || *v.FixedPrice != 2.50 {
		t.Fatalf("bad row: %+v", v)
	}

	// Second create with the same name collides.
	resp, _ = doJSON(t, app, "POST", "/api/vegetables", map[string]any{"name": "Potato"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("want 409 duplicate, got %d", resp.StatusCode)
	}

	// Patch drops the fixed price; the stored override must go with it.
	resp, body = doJSON(t, app, "PATCH", "/api/vegetables/"+v.ID, map[string]any{
		"hasFixedPrice": false, "isAvailable": false,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch: got %d body=%s", resp.StatusCode, body)
	}
	var patched domain.Vegetable
	if err := json.Unmarshal(body, &patched); err != nil {
		t.Fatal(err)
	}
	if patched.HasFixedPrice || patched.FixedPrice != nil || patched.IsAvailable {
		t.Fatalf("patch not applied: %+v", patched)
	}

	resp, _ = doJSON(t, app, "PATCH", "/api/vegetables/no-such-id", map[string]any{"isAvailable": true})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown id, got %d", resp.StatusCode)
	}

	// Patching hasFixedPrice on without a price violates the invariant.
	resp, _ = doJSON(t, app, "PATCH", "/api/vegetables/"+v.ID, map[string]any{"hasFixedPrice": true})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for fixed price without value, got %d", resp.StatusCode)
	}
}

func TestSignerAndCacheAdmin(t *testing.T) {
	app := newAPIApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/signers", map[string]any{"name": "Ravi"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create signer: got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "POST", "/api/signers", map[string]any{"name": "Ravi"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("want 409 duplicate signer, got %d", resp.StatusCode)
	}

	// Prime a couple of listing caches, then inspect and reset.
	doJSON(t, app, "GET", "/api/signers", nil)
	doJSON(t, app, "GET", "/api/vegetables", nil)

	resp, body := doJSON(t, app, "GET", "/api/cache/keys", nil)
	var keys struct {
		Keys []string `json:"keys"`
	}
	if err := json.Unmarshal(body, &keys); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || len(keys.Keys) < 2 {
		t.Fatalf("want primed cache keys, got %d %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, "DELETE", "/api/cache", nil)
	var reset struct {
		Evicted int `json:"evicted"`
	}
	if err := json.Unmarshal(body, &reset); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || reset.Evicted < 2 {
		t.Fatalf("reset should evict primed keys: %d %s", resp.StatusCode, body)
	}
}
