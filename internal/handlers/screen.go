package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	apperrors "chargili/internal/errors"
	"chargili/internal/logger"
	"chargili/internal/middleware"
	"chargili/internal/models"
	"chargili/internal/remotelist"
	"chargili/internal/repositories"
	"chargili/internal/session"
	"chargili/internal/utils/pagination"
	"chargili/internal/utils/response"
	"chargili/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Screen is the view-model of a list screen.
type Screen struct {
	Title   string            `json:"title"`
	State   remotelist.Status `json:"state"`
	Rows    []Row             `json:"rows"`
	Error   string            `json:"error,omitempty"`
	Page    *pagination.Meta  `json:"page,omitempty"`
	Filters interface{}       `json:"filters,omitempty"`
	Options fiber.Map         `json:"options,omitempty"`
	Toast   *Toast            `json:"toast,omitempty"`
	Dialog  *Dialog           `json:"dialog,omitempty"`
}

// Row is one table line and what the operator may do with it.
type Row struct {
	Record          interface{}  `json:"record"`
	CanEdit         bool         `json:"canEdit"`
	CanDelete       bool         `json:"canDelete"`
	CanRespond      bool         `json:"canRespond,omitempty"`
	CanUpdateStatus bool         `json:"canUpdateStatus,omitempty"`
	StatusColor     models.Color `json:"statusColor,omitempty"`
}

type Toast struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func success(message string) *Toast {
	return &Toast{Type: "success", Message: message}
}

// Dialog is an open form, echoed back when a submission fails.
type Dialog struct {
	Open   bool                       `json:"open"`
	Form   interface{}                `json:"form,omitempty"`
	Error  string                     `json:"error,omitempty"`
	Fields apperrors.ValidationErrors `json:"fields,omitempty"`
}

func rowsOf[T any](items []T, fn func(T) Row) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, fn(item))
	}
	return rows
}

// Base carries what every screen handler needs.
type Base struct {
	log       *logger.Logger
	sessions  *session.Manager
	lists     *remotelist.Registry
	validator *validation.Validator
	audit     repositories.AuditRepository
	secure    bool
}

type BaseConfig struct {
	Logger        *logger.Logger
	Sessions      *session.Manager
	Lists         *remotelist.Registry
	Validator     *validation.Validator
	Audit         repositories.AuditRepository
	SecureCookies bool
}

func NewBase(cfg BaseConfig) *Base {
	b := &Base{
		log:       cfg.Logger,
		sessions:  cfg.Sessions,
		lists:     cfg.Lists,
		validator: cfg.Validator,
		audit:     cfg.Audit,
		secure:    cfg.SecureCookies,
	}
	if b.log == nil {
		b.log = logger.NewNop()
	}
	if b.lists == nil {
		b.lists = remotelist.NewRegistry()
	}
	if b.validator == nil {
		b.validator = validation.New()
	}
	if b.audit == nil {
		b.audit = repositories.NoopAuditRepository{}
	}
	return b
}

var errSessionLost = apperrors.NewAPIError(http.StatusUnauthorized, session.MsgSessionExpired)

// fetchList runs fetch through the session's list for screen. Failures other
// than a lost session end up in the returned state.
func fetchList[T any](b *Base, c *fiber.Ctx, screen string, fetch remotelist.FetchFunc[T]) (remotelist.State[T], error) {
	state := middleware.State(c)
	list := remotelist.Get[T](b.lists, state.ID, screen)

	st, err := list.Fetch(c.UserContext(), fetch)
	if apperrors.IsUnauthorized(err) || !state.IsAuthenticated() {
		return st, errSessionLost
	}
	if err != nil && !stderrors.Is(err, remotelist.ErrStale) {
		b.log.Warnw("list fetch failed", "screen", screen, "error", err)
	}
	return st, nil
}

func (b *Base) render(c *fiber.Ctx, status int, s Screen) error {
	if s.Rows == nil {
		s.Rows = []Row{}
	}
	return c.Status(status).JSON(s)
}

func sessionLost(c *fiber.Ctx, err error) bool {
	return apperrors.IsUnauthorized(err) || !middleware.State(c).IsAuthenticated()
}

// expired sends an operator whose token was rejected back to the login screen.
func (b *Base) expired(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}

// fail answers a failed read or action.
func (b *Base) fail(c *fiber.Ctx, err error) error {
	if sessionLost(c, err) {
		return b.expired(c)
	}
	var verrs apperrors.ValidationErrors
	if stderrors.As(err, &verrs) {
		return response.ValidationError(c, verrs, nil)
	}
	if apperrors.StatusOf(err) >= http.StatusInternalServerError {
		b.log.Errorw("request failed", "path", c.Path(), "error", err)
	}
	return response.FromError(c, err)
}

// dialogFail keeps the dialog open with the submitted form and the error.
func (b *Base) dialogFail(c *fiber.Ctx, form interface{}, err error) error {
	if sessionLost(c, err) {
		return b.expired(c)
	}
	dialog := &Dialog{Open: true, Form: form, Error: apperrors.MessageOf(err)}
	var verrs apperrors.ValidationErrors
	if stderrors.As(err, &verrs) {
		dialog.Fields = verrs
	}
	return c.Status(apperrors.StatusOf(err)).JSON(fiber.Map{
		"error":  dialog.Error,
		"dialog": dialog,
	})
}

func (b *Base) bind(c *fiber.Ctx, form interface{}) error {
	if err := c.BodyParser(form); err != nil {
		return apperrors.ErrInvalidBody
	}
	return nil
}

// bindValid parses the body into form and checks its struct tags.
func (b *Base) bindValid(c *fiber.Ctx, form interface{}) error {
	if err := b.bind(c, form); err != nil {
		return err
	}
	return b.validator.Struct(form)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

func confirmed(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true" || c.FormValue("confirm") == "true"
}

// askConfirmation answers 428 without doing anything.
func askConfirmation(c *fiber.Ctx, prompt string) error {
	return c.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{
		"error":   apperrors.ErrConfirmationRequired.Message,
		"confirm": fiber.Map{"prompt": prompt},
	})
}

// record appends a mutation to the audit trail. Failures are only logged.
func (b *Base) record(c *fiber.Ctx, action, entity string, id interface{}, detail string) {
	state := middleware.State(c)
	entry := &models.AuditEntry{
		Action: action,
		Entity: entity,
		Detail: detail,
	}
	if id != nil {
		entry.EntityID = fmt.Sprint(id)
	}
	if state.User != nil {
		entry.Actor = state.User.Email
		entry.Role = state.User.Role
	}

	if err := b.audit.Record(context.WithoutCancel(c.UserContext()), entry); err != nil {
		b.log.Errorw("audit record failed", "action", action, "entity", entity, "error", err)
	}
}

func sessionID(c *fiber.Ctx) string {
	return middleware.State(c).ID
}
