package service

import (
	"context"
	"sort"
	"time"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type stubUserRepo struct {
	users       map[uint]*domain.User
	assignments map[uint][]uint
	apps        map[uint]domain.App
	nextID      uint

	replacedWith [][]uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:       make(map[uint]*domain.User),
		assignments: make(map[uint][]uint),
		apps:        make(map[uint]domain.App),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	copy.CreatedAt = time.Now()
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		u := *r.users[id]
		u.AssignedAppIDs = append([]uint(nil), r.assignments[id]...)
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id uint, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetPasswordHash(_ context.Context, id uint, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) AssignApps(_ context.Context, userID uint, appIDs []uint) error {
	existing := map[uint]bool{}
	for _, id := range r.assignments[userID] {
		existing[id] = true
	}
	for _, id := range appIDs {
		if !existing[id] {
			r.assignments[userID] = append(r.assignments[userID], id)
		}
	}
	return nil
}

func (r *stubUserRepo) ReplaceAssignments(_ context.Context, userID uint, appIDs []uint) error {
	r.assignments[userID] = append([]uint(nil), appIDs...)
	r.replacedWith = append(r.replacedWith, append([]uint(nil), appIDs...))
	return nil
}

func (r *stubUserRepo) ActiveAppsForUser(_ context.Context, userID uint) ([]domain.App, error) {
	out := []domain.App{}
	for _, appID := range r.assignments[userID] {
		app, ok := r.apps[appID]
		if ok && app.IsActive {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubAppRepo struct {
	apps   map[uint]*domain.App
	nextID uint

	adminAssigned []uint
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[uint]*domain.App)}
}

func cloneApp(a *domain.App) *domain.App {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.App) (*domain.App, error) {
	for _, a := range r.apps {
		if a.Slug == app.Slug {
			return nil, domain.ErrSlugExists
		}
	}
	r.nextID++
	copy := cloneApp(app)
	copy.ID = r.nextID
	copy.CreatedAt = time.Now()
	r.apps[copy.ID] = cloneApp(copy)
	return copy, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id uint) (*domain.App, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrAppNotFound
	}
	return cloneApp(a), nil
}

func (r *stubAppRepo) FindBySlug(_ context.Context, slug string) (*domain.App, error) {
	for _, a := range r.apps {
		if a.Slug == slug {
			return cloneApp(a), nil
		}
	}
	return nil, domain.ErrAppNotFound
}

func (r *stubAppRepo) List(_ context.Context) ([]domain.App, error) {
	ids := make([]uint, 0, len(r.apps))
	for id := range r.apps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]domain.App, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.apps[id])
	}
	return out, nil
}

func (r *stubAppRepo) Save(_ context.Context, app *domain.App) (*domain.App, error) {
	if _, ok := r.apps[app.ID]; !ok {
		return nil, domain.ErrAppNotFound
	}
	r.apps[app.ID] = cloneApp(app)
	return cloneApp(app), nil
}

func (r *stubAppRepo) AssignToAdmins(_ context.Context, appID uint) error {
	r.adminAssigned = append(r.adminAssigned, appID)
	return nil
}

type recordedAudit struct {
	UserID   *uint
	Action   string
	Metadata map[string]any
}

type stubAuditRecorder struct {
	entries []recordedAudit
}

func (a *stubAuditRecorder) Record(_ context.Context, userID *uint, action string, metadata map[string]any) {
	a.entries = append(a.entries, recordedAudit{UserID: userID, Action: action, Metadata: metadata})
}

func (a *stubAuditRecorder) lastAction() string {
	if len(a.entries) == 0 {
		return ""
	}
	return a.entries[len(a.entries)-1].Action
}
