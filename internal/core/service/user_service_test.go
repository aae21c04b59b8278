package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
	"github.com/core-platform/launchpad/internal/hash"
)

func TestUserAdminService_Create_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRecorder{}
	svc := NewUserAdminService(repo, audit, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "carol",
		Password: "longenough",
		AppIDs:   []uint{3, 5},
		ActorID:  1,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user active by default")
	}
	if user.PasswordHash == "longenough" || !hash.Verify("longenough", user.PasswordHash) {
		t.Fatalf("password not hashed correctly")
	}
	if got := repo.assignments[user.ID]; len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %v", got)
	}
	if audit.lastAction() != domain.AuditUserCreated {
		t.Fatalf("expected %s audit entry, got %q", domain.AuditUserCreated, audit.lastAction())
	}
}

func TestUserAdminService_Create_Validation(t *testing.T) {
	svc := NewUserAdminService(newStubUserRepo(), &stubAuditRecorder{}, zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "x"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing password, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "x", Password: "short"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for short password, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "x", Password: "longenough", Role: "owner"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad role, got %v", err)
	}
}

func TestUserAdminService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, &stubAuditRecorder{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "dave", Password: "longenough"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "dave", Password: "different1"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserAdminService_Update_ReplacesAssignments(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRecorder{}
	svc := NewUserAdminService(repo, audit, zerolog.Nop())

	user := seedUser(t, repo, "erin", "longenough", domain.RoleUser, true)
	repo.assignments[user.ID] = []uint{1, 2, 3}

	// Non-nil slice replaces the whole set.
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{AppIDs: []uint{9}, ActorID: 1}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got := repo.assignments[user.ID]; len(got) != 1 || got[0] != 9 {
		t.Fatalf("expected assignments replaced with [9], got %v", got)
	}

	// Empty (non-nil) slice clears every assignment.
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{AppIDs: []uint{}, ActorID: 1}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got := repo.assignments[user.ID]; len(got) != 0 {
		t.Fatalf("expected assignments cleared, got %v", got)
	}

	// Nil leaves assignments alone.
	repo.replacedWith = nil
	active := false
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{IsActive: &active, ActorID: 1}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.replacedWith) != 0 {
		t.Fatalf("expected no assignment replacement, got %v", repo.replacedWith)
	}
	if audit.lastAction() != domain.AuditUserUpdated {
		t.Fatalf("expected %s audit entry, got %q", domain.AuditUserUpdated, audit.lastAction())
	}
}

func TestUserAdminService_Update_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, &stubAuditRecorder{}, zerolog.Nop())

	bad := domain.Role("owner")
	var ve *domain.ValidationError
	if _, err := svc.Update(context.Background(), 1, ports.UpdateUserInput{Role: &bad}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad role, got %v", err)
	}

	good := domain.RoleAdmin
	if _, err := svc.Update(context.Background(), 42, ports.UpdateUserInput{Role: &good}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserAdminService_SetPassword(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRecorder{}
	svc := NewUserAdminService(repo, audit, zerolog.Nop())

	user := seedUser(t, repo, "frank", "oldpassword", domain.RoleUser, true)

	var ve *domain.ValidationError
	if err := svc.SetPassword(context.Background(), user.ID, "short", 1); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if err := svc.SetPassword(context.Background(), user.ID, "brand new pw", 1); err != nil {
		t.Fatalf("SetPassword returned error: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), user.ID)
	if !hash.Verify("brand new pw", stored.PasswordHash) {
		t.Fatalf("stored hash does not match new password")
	}
	if audit.lastAction() != domain.AuditUserPasswordSet {
		t.Fatalf("expected %s audit entry, got %q", domain.AuditUserPasswordSet, audit.lastAction())
	}
}

func TestUserAdminService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserAdminService(repo, &stubAuditRecorder{}, zerolog.Nop())

	u1 := seedUser(t, repo, "grace", "longenough", domain.RoleAdmin, true)
	seedUser(t, repo, "heidi", "longenough", domain.RoleUser, true)
	repo.assignments[u1.ID] = []uint{4, 7}

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	for _, s := range summaries {
		if s.User.ID == u1.ID {
			if s.AppCount != 2 || len(s.AssignedAppIDs) != 2 {
				t.Fatalf("unexpected summary for grace: %+v", s)
			}
		}
	}
}
