package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/core-platform/launchpad/internal/api/middleware"
	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type stubUserService struct {
	listFn        func(ctx context.Context) ([]ports.UserSummary, error)
	createFn      func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn      func(ctx context.Context, id uint, in ports.UpdateUserInput) (*domain.User, error)
	setPasswordFn func(ctx context.Context, id uint, password string, actorID uint) error
}

func (s *stubUserService) List(ctx context.Context) ([]ports.UserSummary, error) {
	return s.listFn(ctx)
}
func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}
func (s *stubUserService) Update(ctx context.Context, id uint, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubUserService) SetPassword(ctx context.Context, id uint, password string, actorID uint) error {
	return s.setPasswordFn(ctx, id, password, actorID)
}

func TestUserHandler_List(t *testing.T) {
	users := &stubUserService{
		listFn: func(context.Context) ([]ports.UserSummary, error) {
			return []ports.UserSummary{
				{
					User:           domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin, IsActive: true, CreatedAt: time.Now()},
					AppCount:       2,
					AssignedAppIDs: []uint{1, 2},
				},
			}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var body listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(body.Users))
	}
	u := body.Users[0]
	if u.Username != "admin" || u.GlobalRole != "admin" || u.AppCount != 2 || len(u.AssignedAppIDs) != 2 {
		t.Fatalf("unexpected summary: %+v", u)
	}
}

func TestUserHandler_Create(t *testing.T) {
	var got ports.CreateUserInput
	users := &stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			got = in
			return &domain.User{ID: 2, Username: in.Username, Role: domain.RoleUser, IsActive: true}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/users",
		`{"username":"bob","password":"longenough","appIds":[3,4]}`)
	middleware.SetIdentity(c, adminClaims())

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Username != "bob" || len(got.AppIDs) != 2 || got.ActorID != 1 {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestUserHandler_Create_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	var ve *domain.ValidationError
	for name, body := range map[string]string{
		"short password": `{"username":"bob","password":"short"}`,
		"bad role":       `{"username":"bob","password":"longenough","globalRole":"owner"}`,
		"missing user":   `{"password":"longenough"}`,
	} {
		c, _ := newTestContext(t, http.MethodPost, "/api/admin/users", body)
		middleware.SetIdentity(c, adminClaims())
		if err := h.Create(c); !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestUserHandler_Update_DistinguishesOmittedFromEmptyAppIDs(t *testing.T) {
	var got ports.UpdateUserInput
	users := &stubUserService{
		updateFn: func(_ context.Context, id uint, in ports.UpdateUserInput) (*domain.User, error) {
			got = in
			return &domain.User{ID: id, Username: "bob", Role: domain.RoleUser, IsActive: true}, nil
		},
	}
	h := NewUserHandler(users)

	run := func(body string) ports.UpdateUserInput {
		c, _ := newTestContext(t, http.MethodPatch, "/api/admin/users/2", body)
		c.SetParamNames("id")
		c.SetParamValues("2")
		middleware.SetIdentity(c, adminClaims())
		if err := h.Update(c); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		return got
	}

	// Omitted appIds leaves assignments untouched.
	in := run(`{"isActive":true}`)
	if in.AppIDs != nil {
		t.Fatalf("expected nil AppIDs when omitted, got %v", in.AppIDs)
	}

	// An explicit empty array clears every assignment.
	in = run(`{"appIds":[]}`)
	if in.AppIDs == nil || len(in.AppIDs) != 0 {
		t.Fatalf("expected empty non-nil AppIDs, got %v", in.AppIDs)
	}
}

func TestUserHandler_SetPassword(t *testing.T) {
	var gotID, gotActor uint
	var gotPassword string
	users := &stubUserService{
		setPasswordFn: func(_ context.Context, id uint, password string, actorID uint) error {
			gotID, gotPassword, gotActor = id, password, actorID
			return nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/users/3/password", `{"password":"longenough"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	middleware.SetIdentity(c, adminClaims())

	if err := h.SetPassword(c); err != nil {
		t.Fatalf("SetPassword returned error: %v", err)
	}
	if gotID != 3 || gotPassword != "longenough" || gotActor != 1 {
		t.Fatalf("unexpected args: id=%d password=%q actor=%d", gotID, gotPassword, gotActor)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
