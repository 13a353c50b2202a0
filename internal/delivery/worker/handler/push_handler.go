// Package handler consumes gamification events pushed by Pub/Sub.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const googleIssuer = "accounts.google.com"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a push request's OIDC token against the endpoint audience.
type TokenValidator func(r *http.Request) error

// PushHandler receives committed gamification effects and records them in the activity log.
type PushHandler struct {
	logger   *slog.Logger
	validate TokenValidator
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushHandler verifies Google-signed tokens outside development when the
// google provider is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{logger: params.Logger}

	cfg := params.Config
	if cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvDevelop {
		h.validate = verifyPubSubToken
	}

	return h
}

// WithTokenValidator replaces the push token check; nil disables it.
func (h *PushHandler) WithTokenValidator(validate TokenValidator) *PushHandler {
	h.validate = validate

	return h
}

// HandlePush acknowledges every well-formed message with 200. Malformed
// payloads get 400 so Pub/Sub dead-letters them instead of retrying forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.validate != nil {
		if err := h.validate(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode gamification event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(c, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)

	reqLogger.InfoContext(ctx, "[Worker] Gamification event received",
		slog.String("event_id", event.EventID),
		slog.String("operation", event.Operation),
		slog.Uint64("user_id", event.UserID),
		slog.Int("effects", len(event.Effects)),
	)

	for _, effect := range event.Effects {
		reqLogger.LogAttrs(ctx, effectLevel(effect.Kind), "[Worker] Effect", effectAttrs(event, effect)...)
	}

	return c.NoContent(http.StatusOK)
}

func decodeEvent(data string) (*service.GamificationEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	event := new(service.GamificationEvent)
	if err := json.Unmarshal(raw, event); err != nil {
		return nil, errors.Wrap(err, "message data is not a gamification event")
	}
	if event.EventID == "" || event.UserID == 0 {
		return nil, errors.New("event id and user id are required")
	}

	return event, nil
}

// extractRequestID prefers message attributes, then the event payload, then the push request itself.
func extractRequestID(c echo.Context, pushMsg *PubSubMessage, event *service.GamificationEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestID(c)
}

// Level ups and badges are the milestones worth surfacing above debug.
func effectLevel(kind entity.EffectKind) slog.Level {
	switch kind {
	case entity.EffectLevelUp, entity.EffectBadgeAwarded:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func effectAttrs(event *service.GamificationEvent, effect entity.Effect) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("event_id", event.EventID),
		slog.String("kind", string(effect.Kind)),
		slog.Uint64("user_id", effect.UserID),
	}
	if effect.SubjectID != 0 {
		attrs = append(attrs, slog.Uint64("subject_id", effect.SubjectID))
	}
	if effect.Points != 0 {
		attrs = append(attrs, slog.Int("points", effect.Points))
	}
	if effect.Level != 0 {
		attrs = append(attrs, slog.Int("level", effect.Level))
	}
	if effect.Detail != "" {
		attrs = append(attrs, slog.String("detail", effect.Detail))
	}

	return attrs
}

// verifyPubSubToken validates the Google-signed OIDC token attached to push requests.
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if strings.TrimPrefix(payload.Issuer, "https://") != googleIssuer {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
