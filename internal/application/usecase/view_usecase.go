package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jhoicas/leave-tracker/internal/application/draft"
	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/application/ports"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/approval"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

// SessionReturnTo clave de sesión con la URL a la que volver tras autenticarse.
const SessionReturnTo = "returnTo"

// MsgProfileNotFound flash cuando el perfil pedido no existe.
const MsgProfileNotFound = "The profile for the requested user could not be found."

// ViewUseCase arma los modelos de cada vista: guard primero, después borrador o datos.
type ViewUseCase struct {
	userRepo     repository.UserRepository
	requestRepo  repository.LeaveRequestRepository
	warningsRepo repository.WarningRepository
}

// NewViewUseCase construye el caso de uso de vistas.
func NewViewUseCase(userRepo repository.UserRepository, requestRepo repository.LeaveRequestRepository, warningsRepo repository.WarningRepository) *ViewUseCase {
	return &ViewUseCase{userRepo: userRepo, requestRepo: requestRepo, warningsRepo: warningsRepo}
}

func page(sess ports.Session, actor guard.Actor, view, title, active, flashKey string, data interface{}) *dto.RenderModel {
	return &dto.RenderModel{
		View:     view,
		Title:    title,
		Links:    navigation.Build(actor.Role, active),
		Messages: flash.Pop(sess, flashKey),
		Data:     data,
	}
}

func publicPage(sess ports.Session, view, title, active, flashKey string, data interface{}) *dto.RenderModel {
	return &dto.RenderModel{
		View:       view,
		Title:      title,
		Links:      navigation.Public(active),
		Messages:   flash.Pop(sess, flashKey),
		HideLogout: true,
		Data:       data,
	}
}

// Index destino de la raíz. Solo consulta el conteo de pendientes cuando el guard lo necesita.
func (uc *ViewUseCase) Index(ctx context.Context, actor guard.Actor) (string, error) {
	pending := 0
	if guard.NeedsPendingCount(actor) {
		isPending := true
		n, err := uc.requestRepo.Count(ctx, repository.RequestFilter{VolunteerID: actor.ID, IsPending: &isPending})
		if err != nil {
			return "", fmt.Errorf("index: contar pendientes: %w", err)
		}
		pending = n
	}
	return guard.IndexTarget(actor, pending), nil
}

// Login vista de login. Solo consume un borrador de login: un borrador de solicitud
// debe sobrevivir hasta después de autenticarse.
func (uc *ViewUseCase) Login(sess ports.Session) *dto.RenderModel {
	sub, _ := draft.TakeOwn[dto.LoginDraft](sess, draft.KindLogin)
	return publicPage(sess, "login", "Login", navigation.HrefLogin, flash.KeyLogin, dto.LoginView{Submission: sub})
}

// Register vista de registro por invitación.
func (uc *ViewUseCase) Register(sess ports.Session, token string) *dto.RenderModel {
	sub, _ := draft.TakeOwn[dto.RegisterDraft](sess, draft.KindRegister)
	return publicPage(sess, "register", "Register", "", flash.KeyRegister, dto.RegisterView{Token: token, Submission: sub})
}

// Reset vista de "olvidé mi contraseña" (solo render).
func (uc *ViewUseCase) Reset(sess ports.Session) *dto.RenderModel {
	sub, _ := draft.TakeOwn[dto.ResetDraft](sess, draft.KindReset)
	return publicPage(sess, "forgot_password", "Forgot Password", "", flash.KeyReset, dto.ResetView{Submission: sub})
}

// Dashboard consume returnTo (una sola vez) y si no hay, lista las solicitudes del actor:
// las propias para un voluntario, las pendientes para Staff o superior.
func (uc *ViewUseCase) Dashboard(ctx context.Context, actor guard.Actor, sess ports.Session) (string, *dto.RenderModel, error) {
	if to, ok := sess.Get(SessionReturnTo).(string); ok && to != "" {
		sess.Delete(SessionReturnTo)
		return to, nil, nil
	}

	filter := repository.RequestFilter{VolunteerID: actor.ID}
	if access.AtLeast(actor.Role, access.Staff) {
		isPending := true
		filter = repository.RequestFilter{IsPending: &isPending}
	}
	reqs, err := uc.requestRepo.Find(ctx, filter)
	if err != nil {
		return "", nil, fmt.Errorf("dashboard: listar solicitudes: %w", err)
	}
	names := newUserNames(uc.userRepo)
	data := dto.DashboardView{Requests: make([]dto.LeaveRequestView, 0, len(reqs))}
	for _, r := range reqs {
		v, err := names.requestView(ctx, r)
		if err != nil {
			return "", nil, fmt.Errorf("dashboard: %w", err)
		}
		if v.IsPending {
			data.PendingCount++
		}
		data.Requests = append(data.Requests, v)
	}
	return "", page(sess, actor, "dashboard", "Dashboard", navigation.HrefDashboard, flash.KeyDashboard, data), nil
}

// SubmitForm formulario de nueva solicitud; Staff o superior elige el voluntario.
func (uc *ViewUseCase) SubmitForm(ctx context.Context, actor guard.Actor, sess ports.Session) (*dto.RenderModel, error) {
	sub, _ := draft.PeekAndClear[dto.SubmitRequest](sess, draft.KindSubmission)
	data := dto.SubmissionView{
		Submission:            sub,
		ShouldSelectRequestee: access.AtLeast(actor.Role, access.Staff),
		Text:                  dto.SubmitText{Submit: "Submit All Legs"},
	}
	if data.ShouldSelectRequestee {
		volunteers, err := uc.userRepo.Find(ctx, repository.UserFilter{MaxRole: access.Volunteer})
		if err != nil {
			return nil, fmt.Errorf("submit form: listar voluntarios: %w", err)
		}
		data.Volunteers = toUserResponses(volunteers)
	}
	return page(sess, actor, "submissionForm", "Submission Form", navigation.HrefSubmit, flash.KeySubmission, data), nil
}

// EditRequest formulario de edición: el borrador pendiente tiene prioridad sobre la solicitud guardada.
func (uc *ViewUseCase) EditRequest(ctx context.Context, actor guard.Actor, sess ports.Session, requestID string) (*dto.RenderModel, error) {
	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("edit request: %w", err)
	}
	if d := guard.EditRequest(actor, req); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}

	sub, ok := draft.PeekAndClear[dto.SubmitRequest](sess, draft.KindSubmission)
	if !ok {
		sub = dto.SubmitRequest{
			Volunteer:           req.VolunteerID,
			Reviewer:            req.ReviewerID,
			Legs:                toLegInputs(req.Legs),
			CounterpartApproved: fmt.Sprintf("%t", req.CounterpartApproved),
		}
	}
	data := dto.SubmissionView{
		RequestID:             req.ID,
		Submission:            sub,
		ShouldSelectRequestee: access.AtLeast(actor.Role, access.Staff),
		Text:                  dto.SubmitText{Submit: "Update Leave Request"},
	}
	if data.ShouldSelectRequestee {
		volunteers, err := uc.userRepo.Find(ctx, repository.UserFilter{MaxRole: access.Volunteer})
		if err != nil {
			return nil, fmt.Errorf("edit request: listar voluntarios: %w", err)
		}
		data.Volunteers = toUserResponses(volunteers)
	}
	return page(sess, actor, "submissionForm", "Edit Request", "", flash.KeySubmission, data), nil
}

// Approval vista de aprobación: avisos por país y flash derivado del estado.
// Un fallo al leer los avisos se propaga (no se renderiza una vista incompleta).
func (uc *ViewUseCase) Approval(ctx context.Context, actor guard.Actor, sess ports.Session, requestID string) (*dto.RenderModel, error) {
	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("approval: %w", err)
	}
	if d := guard.ViewRequest(actor, req); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}

	warnings, err := uc.warningsRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("approval: leer avisos: %w", err)
	}
	req.Legs = approval.MergeWarnings(req.Legs, warnings)
	flash.Push(sess, flash.KeyApproval, approval.DeriveFlash(req.Status))

	view, err := newUserNames(uc.userRepo).requestView(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("approval: %w", err)
	}
	data := dto.ApprovalView{
		Request:   view,
		CanReview: req.Status.IsPending && guard.ReviewRequest(actor).Allowed,
	}
	return page(sess, actor, "approval", "Request Approval", "", flash.KeyApproval, data), nil
}

// Users usuarios con rol menor o igual al del actor, agrupados por rol. q filtra por
// coincidencia difusa sobre nombre y email.
func (uc *ViewUseCase) Users(ctx context.Context, actor guard.Actor, sess ports.Session, q string) (*dto.RenderModel, error) {
	if d := guard.ViewUsers(actor); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}
	users, err := uc.userRepo.Find(ctx, repository.UserFilter{MaxRole: actor.Role})
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	users = filterUsers(users, q)

	data := dto.UsersView{
		Query:      q,
		Admins:     []dto.UserResponse{},
		Staff:      []dto.UserResponse{},
		Volunteers: []dto.UserResponse{},
	}
	for _, u := range users {
		switch u.Role {
		case access.Admin:
			data.Admins = append(data.Admins, *toUserResponse(u))
		case access.Staff:
			data.Staff = append(data.Staff, *toUserResponse(u))
		case access.Volunteer:
			data.Volunteers = append(data.Volunteers, *toUserResponse(u))
		}
	}
	return page(sess, actor, "users", "Users", navigation.HrefUsers, flash.KeyUsers, data), nil
}

// filterUsers ordena por cercanía de la coincidencia; q vacío no filtra.
func filterUsers(users []*entity.User, q string) []*entity.User {
	if q == "" {
		return users
	}
	targets := make([]string, len(users))
	for i, u := range users {
		targets[i] = u.Name + " " + u.Email
	}
	ranks := fuzzy.RankFindNormalizedFold(q, targets)
	sort.Stable(ranks)
	out := make([]*entity.User, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, users[r.OriginalIndex])
	}
	return out
}

// AddUsers formulario de invitación.
func (uc *ViewUseCase) AddUsers(actor guard.Actor, sess ports.Session) (*dto.RenderModel, error) {
	if d := guard.AddUsersForm(actor); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}
	roles := make([]string, 0, len(access.Roles))
	for _, r := range access.Roles {
		if access.Compare(r, actor.Role) <= 0 {
			roles = append(roles, r.String())
		}
	}
	return page(sess, actor, "addUsers", "Add Users", navigation.HrefAddUsers, flash.KeyAddUsers, dto.AddUsersView{Roles: roles}), nil
}

// Profile perfil de userID (el propio si viene vacío).
func (uc *ViewUseCase) Profile(ctx context.Context, actor guard.Actor, sess ports.Session, userID string) (*dto.RenderModel, error) {
	if userID == "" {
		userID = actor.ID
	}
	if d := guard.ViewProfile(actor, userID); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if user == nil {
		return nil, &domain.RedirectError{
			To:       navigation.HrefDashboard,
			FlashKey: flash.KeyDashboard,
			Flash:    &domain.Flash{Text: MsgProfileNotFound, Class: domain.FlashDanger},
			Err:      domain.ErrUserNotFound,
		}
	}

	fields := guard.ProfileFields(actor, user)
	editable := make([]string, 0, len(fields))
	for f := range fields {
		editable = append(editable, string(f))
	}
	sort.Strings(editable)

	data := dto.ProfileView{
		UserToShow:     *toUserResponse(user),
		EditableFields: editable,
		CanDelete:      guard.DeleteUser(actor).Allowed && user.ID != actor.ID,
	}
	if user.ID == actor.ID {
		data.ProfileClass = "active"
	}
	return page(sess, actor, "profile", "Profile", "", flash.KeyProfile, data), nil
}
