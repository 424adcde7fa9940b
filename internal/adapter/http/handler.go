package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"islandfarm/internal/app/action"
	"islandfarm/internal/app/gameinfo"
	"islandfarm/internal/app/move"
	"islandfarm/internal/app/observe"
	"islandfarm/internal/app/ports"
	"islandfarm/internal/app/replay"
	"islandfarm/internal/app/session"
	"islandfarm/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/go-playground/validator/v10"
)

const sessionIDHeader = "X-Session-ID"

const defaultReplayLimit = 50

type Handler struct {
	SessionUC session.UseCase
	ObserveUC observe.UseCase
	ActionUC  action.UseCase
	MoveUC    move.UseCase
	ReplayUC  replay.UseCase
	InfoUC    gameinfo.UseCase
	KPI       kpiSnapshotProvider
	// Metrics serves the prometheus exposition format when set.
	Metrics http.Handler
	// Web holds the browser client: index.html at its root.
	Web fs.FS

	validate *validator.Validate
}

func (h *Handler) RegisterRoutes(s *server.Hertz) {
	h.validate = newValidator()
	s.Use(corsMiddleware())

	farmAPI := s.Group("/api/farm")
	farmAPI.POST("/session", h.startSession)
	farmAPI.POST("/observe", h.observe)
	farmAPI.POST("/action", h.action)
	farmAPI.POST("/move", h.move)
	farmAPI.GET("/replay", h.replay)
	farmAPI.GET("/config", h.config)

	s.GET("/ops/kpi", h.kpi)
	if h.Metrics != nil {
		s.GET("/metrics", adaptor.HertzHandler(h.Metrics))
	}
	if h.Web != nil {
		s.GET("/", h.webIndex)
		s.GET("/static/*filepath", h.webStatic)
		s.NoRoute(h.webIndex)
	}
}

type actionRequest struct {
	Tool   string     `json:"tool" validate:"required,tool"`
	Target *targetPos `json:"target" validate:"required"`
}

type targetPos struct {
	X *int `json:"x" validate:"required"`
	Y *int `json:"y" validate:"required"`
}

type moveRequest struct {
	Direction string `json:"direction" validate:"required,direction"`
	Steps     int    `json:"steps" validate:"gte=0,lte=64"`
}

func (h *Handler) startSession(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SessionUC.Execute(c, session.Request{})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	hlog.CtxInfof(c, "farm session started session_id=%s", resp.SessionID)
	ctx.Response.Header.Set(sessionIDHeader, resp.SessionID)
	ctx.JSON(consts.StatusCreated, resp)
}

func (h *Handler) observe(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSession(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	resp, err := h.ObserveUC.Execute(c, observe.Request{SessionID: sessionID})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h *Handler) action(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSession(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}

	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.validator().Struct(body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", validationMessage(err))
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		SessionID: sessionID,
		Tool:      body.Tool,
		Target:    world.Cell{X: *body.Target.X, Y: *body.Target.Y},
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h *Handler) move(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSession(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}

	var body moveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.validator().Struct(body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", validationMessage(err))
		return
	}

	resp, err := h.MoveUC.Execute(c, move.Request{
		SessionID: sessionID,
		Direction: body.Direction,
		Steps:     body.Steps,
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h *Handler) replay(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSession(ctx)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	limit := defaultReplayLimit
	if raw := string(ctx.Query("limit")); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "invalid limit")
			return
		}
	}
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		SessionID:    sessionID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h *Handler) config(c context.Context, ctx *app.RequestContext) {
	resp, err := h.InfoUC.Execute(c, gameinfo.Request{})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h *Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h *Handler) webIndex(c context.Context, ctx *app.RequestContext) {
	if strings.HasPrefix(string(ctx.Path()), "/api/") {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "route not found")
		return
	}
	h.serveWebFile(c, ctx, "index.html")
}

func (h *Handler) webStatic(c context.Context, ctx *app.RequestContext) {
	name := path.Clean(strings.TrimPrefix(string(ctx.Param("filepath")), "/"))
	if name == "." || strings.HasPrefix(name, "..") {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_filepath", "invalid filepath")
		return
	}
	h.serveWebFile(c, ctx, name)
}

func (h *Handler) serveWebFile(c context.Context, ctx *app.RequestContext, name string) {
	b, err := fs.ReadFile(h.Web, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeErrorBody(ctx, consts.StatusNotFound, "not_found", "file not found")
			return
		}
		writeError(c, ctx, err)
		return
	}
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Data(consts.StatusOK, contentType, b)
}

func (h *Handler) validator() *validator.Validate {
	if h.validate == nil {
		h.validate = newValidator()
	}
	return h.validate
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingSessionID = errors.New("missing x-session-id header")

func requireSession(ctx *app.RequestContext) (string, error) {
	sessionID := strings.TrimSpace(string(ctx.GetHeader(sessionIDHeader)))
	if sessionID == "" {
		return "", ErrMissingSessionID
	}
	return sessionID, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}
	return strings.Join(fields, "; ")
}

func writeError(c context.Context, ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingSessionID):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_session_id", err.Error())
	case errors.Is(err, action.ErrInvalidActionParams),
		errors.Is(err, move.ErrInvalidMoveParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, move.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		hlog.CtxErrorf(c, "farm request %s failed: %v", ctx.Path(), err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
