package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/core-platform/launchpad/internal/core/domain"
)

type stubAuditService struct {
	entries []domain.AuditEntry
	total   int64

	lastLimit  int
	lastOffset int
}

func (s *stubAuditService) Record(context.Context, *uint, string, map[string]any) {}

func (s *stubAuditService) List(_ context.Context, limit, offset int) ([]domain.AuditEntry, int64, error) {
	s.lastLimit = limit
	s.lastOffset = offset
	return s.entries, s.total, nil
}

func TestAuditHandler_List(t *testing.T) {
	uid := uint(1)
	audit := &stubAuditService{
		entries: []domain.AuditEntry{
			{ID: 2, UserID: &uid, Username: "admin", Action: domain.AuditAppCreated, Metadata: map[string]any{"slug": "x"}},
			{ID: 1, Action: domain.AuditSeedCompleted, Metadata: map[string]any{}},
		},
		total: 42,
	}
	h := NewAuditHandler(audit)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/audit?limit=2&offset=4", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if audit.lastLimit != 2 || audit.lastOffset != 4 {
		t.Fatalf("unexpected paging args: %d/%d", audit.lastLimit, audit.lastOffset)
	}

	var body listAuditResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Logs) != 2 || body.Logs[0].Action != domain.AuditAppCreated {
		t.Fatalf("unexpected logs: %+v", body.Logs)
	}
	if body.Logs[1].UserID != nil {
		t.Fatalf("expected system entry without user id")
	}
	p := body.Pagination
	if p.Limit != 2 || p.Offset != 4 || p.Total != 42 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}

func TestAuditHandler_List_ClampsPaging(t *testing.T) {
	audit := &stubAuditService{}
	h := NewAuditHandler(audit)

	cases := map[string][2]int{
		"/api/admin/audit":                       {100, 0},
		"/api/admin/audit?limit=-1&offset=-9":    {100, 0},
		"/api/admin/audit?limit=9999&offset=10":  {500, 10},
		"/api/admin/audit?limit=abc&offset=junk": {100, 0},
	}
	for path, want := range cases {
		c, _ := newTestContext(t, http.MethodGet, path, "")
		if err := h.List(c); err != nil {
			t.Fatalf("%s: List returned error: %v", path, err)
		}
		if audit.lastLimit != want[0] || audit.lastOffset != want[1] {
			t.Fatalf("%s: expected %d/%d, got %d/%d", path, want[0], want[1], audit.lastLimit, audit.lastOffset)
		}
	}
}
