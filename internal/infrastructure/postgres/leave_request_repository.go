package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

var _ repository.LeaveRequestRepository = (*LeaveRequestRepo)(nil)

// LeaveRequestRepo solicitudes y sus tramos (tabla request_legs) sobre PostgreSQL.
// Create y Update escriben varias tablas: llamarlos dentro de una tx (ver TxRunner).
type LeaveRequestRepo struct {
	q Querier
}

// NewLeaveRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeaveRequestRepository(q Querier) *LeaveRequestRepo {
	return &LeaveRequestRepo{q: q}
}

const requestColumns = `id, volunteer_id, COALESCE(reviewer_id, ''), is_pending, is_approved,
	counterpart_approved, created_at, updated_at, decided_at`

func requestWhere(f repository.RequestFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.ID != "" {
		args = append(args, f.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if f.VolunteerID != "" {
		args = append(args, f.VolunteerID)
		conds = append(conds, fmt.Sprintf("volunteer_id = $%d", len(args)))
	}
	if f.IsPending != nil {
		args = append(args, *f.IsPending)
		conds = append(conds, fmt.Sprintf("is_pending = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Find lista solicitudes (más recientes primero) con sus tramos.
func (r *LeaveRequestRepo) Find(ctx context.Context, f repository.RequestFilter) ([]*entity.LeaveRequest, error) {
	where, args := requestWhere(f)
	rows, err := r.q.Query(ctx, `SELECT `+requestColumns+` FROM leave_requests`+where+` ORDER BY created_at DESC, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("find requests: %w", err)
	}
	out := []*entity.LeaveRequest{}
	byID := map[string]*entity.LeaveRequest{}
	ids := []string{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
		byID[req.ID] = req
		ids = append(ids, req.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find requests: %w", err)
	}
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.loadLegs(ctx, ids, byID); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una solicitud con sus tramos. nil, nil si no existe.
func (r *LeaveRequestRepo) GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error) {
	req, err := scanRequest(r.q.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err := r.loadLegs(ctx, []string{req.ID}, map[string]*entity.LeaveRequest{req.ID: req}); err != nil {
		return nil, err
	}
	return req, nil
}

// Count cuenta solicitudes según el filtro.
func (r *LeaveRequestRepo) Count(ctx context.Context, f repository.RequestFilter) (int, error) {
	where, args := requestWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}

// Create inserta la solicitud y sus tramos.
func (r *LeaveRequestRepo) Create(ctx context.Context, req *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (id, volunteer_id, reviewer_id, is_pending, is_approved,
			counterpart_approved, created_at, updated_at, decided_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.VolunteerID, req.ReviewerID, req.Status.IsPending, req.Status.IsApproved,
		req.CounterpartApproved, req.CreatedAt, req.UpdatedAt, req.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return r.insertLegs(ctx, req)
}

// Update reemplaza estado, revisor y tramos.
func (r *LeaveRequestRepo) Update(ctx context.Context, req *entity.LeaveRequest) error {
	query := `
		UPDATE leave_requests SET reviewer_id = NULLIF($2, ''), is_pending = $3, is_approved = $4,
			counterpart_approved = $5, updated_at = $6, decided_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		req.ID, req.ReviewerID, req.Status.IsPending, req.Status.IsApproved,
		req.CounterpartApproved, req.UpdatedAt, req.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM request_legs WHERE request_id = $1`, req.ID); err != nil {
		return fmt.Errorf("delete legs: %w", err)
	}
	return r.insertLegs(ctx, req)
}

func (r *LeaveRequestRepo) insertLegs(ctx context.Context, req *entity.LeaveRequest) error {
	for i, leg := range req.Legs {
		_, err := r.q.Exec(ctx, `
			INSERT INTO request_legs (request_id, position, country_code, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)`,
			req.ID, i, leg.CountryCode, leg.StartDate, leg.EndDate,
		)
		if err != nil {
			return fmt.Errorf("insert leg %d: %w", i, err)
		}
	}
	return nil
}

func (r *LeaveRequestRepo) loadLegs(ctx context.Context, ids []string, byID map[string]*entity.LeaveRequest) error {
	rows, err := r.q.Query(ctx, `
		SELECT request_id, country_code, start_date, end_date
		FROM request_legs WHERE request_id = ANY($1) ORDER BY request_id, position`, ids)
	if err != nil {
		return fmt.Errorf("load legs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			requestID string
			leg       entity.Leg
		)
		if err := rows.Scan(&requestID, &leg.CountryCode, &leg.StartDate, &leg.EndDate); err != nil {
			return fmt.Errorf("scan leg: %w", err)
		}
		if req, ok := byID[requestID]; ok {
			req.Legs = append(req.Legs, leg)
		}
	}
	return rows.Err()
}

func scanRequest(row pgxScanner) (*entity.LeaveRequest, error) {
	var req entity.LeaveRequest
	if err := row.Scan(
		&req.ID, &req.VolunteerID, &req.ReviewerID, &req.Status.IsPending, &req.Status.IsApproved,
		&req.CounterpartApproved, &req.CreatedAt, &req.UpdatedAt, &req.DecidedAt,
	); err != nil {
		return nil, err
	}
	req.Legs = []entity.Leg{}
	return &req, nil
}
