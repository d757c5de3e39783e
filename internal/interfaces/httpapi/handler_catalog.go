package httpapi

import "net/http"

func (h *Handler) GetGameweeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweeks")
	defer span.End()

	numbers, err := h.seasonService.Gameweeks(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve gameweeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameweeksDTO{
		Previous: numbers.Previous,
		Current:  numbers.Current,
		Next:     numbers.Next,
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.catalogService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	params, err := h.teamParams(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.catalogService.ListPlayersForTeam(ctx, params.TeamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_code", params.TeamCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p, h.catalogService.PositionLabel(p.ElementType)))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamPlayerOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayerOptions")
	defer span.End()

	params, err := h.teamParams(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	options, err := h.catalogService.PlayerOptions(ctx, params.TeamCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list player options failed", "team_code", params.TeamCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerOptionDTO, 0, len(options))
	for _, o := range options {
		items = append(items, playerOptionDTO{
			Key:      o.Key,
			Text:     o.Text,
			Disabled: o.Disabled,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAvailability")
	defer span.End()

	params, err := h.playerParams(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	check, err := h.catalogService.CheckPlayer(ctx, params.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "check player failed", "player_id", params.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerCheckToDTO(check))
}
