package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestMetaHandler_Version(t *testing.T) {
	h := NewMetaHandler("1.4.2", "2026-08-30.1", "abc1234")

	c, rec := newTestContext(t, http.MethodGet, "/api/meta/version", "")
	if err := h.Version(c); err != nil {
		t.Fatalf("Version returned error: %v", err)
	}

	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=300, stale-while-revalidate=300" {
		t.Fatalf("unexpected Cache-Control: %q", got)
	}

	var body metaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Version != "1.4.2" || body.Build != "2026-08-30.1" || body.Commit != "abc1234" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestMetaHandler_OmitsUnsetFields(t *testing.T) {
	h := NewMetaHandler("1.4.2", "", "")

	c, rec := newTestContext(t, http.MethodGet, "/api/meta/version", "")
	if err := h.Version(c); err != nil {
		t.Fatalf("Version returned error: %v", err)
	}

	raw := rec.Body.String()
	if strings.Contains(raw, "build") || strings.Contains(raw, "commit") {
		t.Fatalf("expected build/commit omitted, got %s", raw)
	}
}
