package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
	"github.com/riskibarqy/fpl-ownership/internal/usecase"
)

type Handler struct {
	seasonService    *usecase.SeasonService
	catalogService   *usecase.CatalogService
	ownershipService *usecase.OwnershipService
	managerService   *usecase.ManagerService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	catalogService *usecase.CatalogService,
	ownershipService *usecase.OwnershipService,
	managerService *usecase.ManagerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:    seasonService,
		catalogService:   catalogService,
		ownershipService: ownershipService,
		managerService:   managerService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type teamPathParams struct {
	TeamCode int `validate:"gt=0"`
}

type playerPathParams struct {
	PlayerID int64 `validate:"gt=0"`
}

func (h *Handler) teamParams(ctx context.Context, r *http.Request) (teamPathParams, error) {
	raw := strings.TrimSpace(r.PathValue("teamCode"))
	code, err := strconv.Atoi(raw)
	if err != nil {
		return teamPathParams{}, fmt.Errorf("%w: team code %q is not a number", usecase.ErrInvalidInput, raw)
	}

	params := teamPathParams{TeamCode: code}
	if err := h.validateRequest(ctx, params); err != nil {
		return teamPathParams{}, err
	}
	return params, nil
}

func (h *Handler) playerParams(ctx context.Context, r *http.Request) (playerPathParams, error) {
	raw := strings.TrimSpace(r.PathValue("playerID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return playerPathParams{}, fmt.Errorf("%w: player id %q is not a number", usecase.ErrInvalidInput, raw)
	}

	params := playerPathParams{PlayerID: id}
	if err := h.validateRequest(ctx, params); err != nil {
		return playerPathParams{}, err
	}
	return params, nil
}
