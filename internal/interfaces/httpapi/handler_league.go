package httpapi

import "net/http"

func (h *Handler) ListOwnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOwnership")
	defer span.End()

	index, err := h.ownershipService.Index(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "build ownership index failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	entries := index.Entries()
	items := make([]ownershipEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, ownershipEntryDTO{PlayerID: e.PlayerID, Owner: e.Owner})
	}
	writeSuccess(ctx, w, http.StatusOK, ownershipDTO{
		League:  h.ownershipService.Registry().Name,
		Count:   index.Len(),
		Entries: items,
	})
}

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagers")
	defer span.End()

	summaries, err := h.managerService.ListSummaries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list manager summaries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]managerSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, managerSummaryToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, managersDTO{
		League:   h.managerService.Registry().Name,
		Managers: items,
	})
}
