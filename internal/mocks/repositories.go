package mocks

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

// ErrStore error genérico de almacenamiento para simular fallos.
var ErrStore = errors.New("mocks: store failure")

// ── Usuarios ──────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	Err   error // si no es nil, todas las operaciones fallan con él
}

func NewUserRepo(users ...*entity.User) *UserRepo {
	r := &UserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *UserRepo) Find(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []*entity.User{}
	for _, u := range r.users {
		if f.ID != "" && u.ID != f.ID {
			continue
		}
		if f.Email != "" && !strings.EqualFold(u.Email, f.Email) {
			continue
		}
		if f.MaxRole != 0 && access.Compare(u.Role, f.MaxRole) > 0 {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ── Solicitudes ───────────────────────────────────────────────────────────────

var _ repository.LeaveRequestRepository = (*LeaveRequestRepo)(nil)

// LeaveRequestRepo repositorio de solicitudes en memoria.
type LeaveRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.LeaveRequest
	Err      error
	// Counts número de llamadas a Count (para verificar que no se consulta sin necesidad).
	Counts int
	// LegsErr simula un fallo al insertar los tramos: Create deja escrita la cabecera y
	// devuelve el error, como el adaptador PostgreSQL a mitad de su secuencia de INSERT.
	LegsErr error
}

func (r *LeaveRequestRepo) snapshot() map[string]*entity.LeaveRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make(map[string]*entity.LeaveRequest, len(r.requests))
	for id, q := range r.requests {
		cp[id] = cloneRequest(q)
	}
	return cp
}

func (r *LeaveRequestRepo) restore(saved map[string]*entity.LeaveRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = saved
}

func NewLeaveRequestRepo(reqs ...*entity.LeaveRequest) *LeaveRequestRepo {
	r := &LeaveRequestRepo{requests: make(map[string]*entity.LeaveRequest)}
	for _, q := range reqs {
		r.requests[q.ID] = cloneRequest(q)
	}
	return r
}

func (r *LeaveRequestRepo) match(q *entity.LeaveRequest, f repository.RequestFilter) bool {
	if f.ID != "" && q.ID != f.ID {
		return false
	}
	if f.VolunteerID != "" && q.VolunteerID != f.VolunteerID {
		return false
	}
	if f.IsPending != nil && q.Status.IsPending != *f.IsPending {
		return false
	}
	return true
}

func cloneRequest(q *entity.LeaveRequest) *entity.LeaveRequest {
	cp := *q
	cp.Legs = make([]entity.Leg, len(q.Legs))
	copy(cp.Legs, q.Legs)
	return &cp
}

func (r *LeaveRequestRepo) Find(_ context.Context, f repository.RequestFilter) ([]*entity.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []*entity.LeaveRequest{}
	for _, q := range r.requests {
		if r.match(q, f) {
			out = append(out, cloneRequest(q))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LeaveRequestRepo) GetByID(_ context.Context, id string) (*entity.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	q, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	return cloneRequest(q), nil
}

func (r *LeaveRequestRepo) Count(_ context.Context, f repository.RequestFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts++
	if r.Err != nil {
		return 0, r.Err
	}
	n := 0
	for _, q := range r.requests {
		if r.match(q, f) {
			n++
		}
	}
	return n, nil
}

func (r *LeaveRequestRepo) Create(_ context.Context, req *entity.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	header := cloneRequest(req)
	if r.LegsErr != nil {
		header.Legs = nil
		r.requests[req.ID] = header
		return r.LegsErr
	}
	r.requests[req.ID] = header
	return nil
}

func (r *LeaveRequestRepo) Update(_ context.Context, req *entity.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.requests[req.ID]; !ok {
		return domain.ErrNotFound
	}
	r.requests[req.ID] = cloneRequest(req)
	return nil
}

// ── Advertencias ──────────────────────────────────────────────────────────────

var _ repository.WarningRepository = (*WarningRepo)(nil)

// WarningRepo advertencias por país en memoria.
type WarningRepo struct {
	mu        sync.Mutex
	ByCountry map[string][]string
	Err       error
}

func NewWarningRepo(byCountry map[string][]string) *WarningRepo {
	if byCountry == nil {
		byCountry = map[string][]string{}
	}
	return &WarningRepo{ByCountry: byCountry}
}

func (r *WarningRepo) FindAll(_ context.Context) (map[string][]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string][]string, len(r.ByCountry))
	for k, v := range r.ByCountry {
		out[k] = append([]string(nil), v...)
	}
	return out, nil
}

func (r *WarningRepo) ReplaceAll(_ context.Context, byCountry map[string][]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.ByCountry = byCountry
	return nil
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// TxRunner ejecuta fn sobre los repos en memoria y cuenta cómo se invocó. Si fn falla
// se restauran las solicitudes al estado previo (rollback).
type TxRunner struct {
	Requests *LeaveRequestRepo
	Users    *UserRepo

	Runs       int
	StrictRuns int
}

var _ usecase.TxRunner = (*TxRunner)(nil)

func (t *TxRunner) Run(_ context.Context, fn usecase.TxFunc) error {
	t.Runs++
	return t.run(fn)
}

func (t *TxRunner) RunStrict(_ context.Context, fn usecase.TxFunc) error {
	t.StrictRuns++
	return t.run(fn)
}

func (t *TxRunner) run(fn usecase.TxFunc) error {
	saved := t.Requests.snapshot()
	if err := fn(t.Requests, t.Users); err != nil {
		t.Requests.restore(saved)
		return err
	}
	return nil
}
