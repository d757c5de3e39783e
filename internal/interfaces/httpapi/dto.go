package httpapi

import (
	"time"

	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
	"github.com/riskibarqy/fpl-ownership/internal/usecase"
)

type gameweeksDTO struct {
	Previous *int `json:"previous"`
	Current  *int `json:"current"`
	Next     *int `json:"next"`
}

type teamDTO struct {
	Code      int    `json:"code"`
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	Code        int64  `json:"code"`
	TeamCode    int    `json:"team_code"`
	ElementType int    `json:"element_type"`
	Position    string `json:"position,omitempty"`
	WebName     string `json:"web_name"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	FullName    string `json:"full_name"`
	Status      string `json:"status"`
	Available   bool   `json:"available"`
}

type playerOptionDTO struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	Disabled bool   `json:"disabled"`
}

type playerAvailabilityDTO struct {
	PlayerID  int64      `json:"player_id"`
	Status    string     `json:"status"`
	Owner     string     `json:"owner,omitempty"`
	Message   string     `json:"message"`
	IsManager bool       `json:"is_manager"`
	Player    *playerDTO `json:"player,omitempty"`
}

type ownershipEntryDTO struct {
	PlayerID int64  `json:"player_id"`
	Owner    string `json:"owner"`
}

type ownershipDTO struct {
	League  string              `json:"league"`
	Count   int                 `json:"count"`
	Entries []ownershipEntryDTO `json:"entries"`
}

type chipUsageDTO struct {
	Name     string `json:"name"`
	Gameweek int    `json:"gameweek"`
	PlayedAt string `json:"played_at,omitempty"`
}

type managerSummaryDTO struct {
	ManagerID        int64          `json:"manager_id"`
	Label            string         `json:"label"`
	TotalPoints      int            `json:"total_points"`
	OverallRank      int64          `json:"overall_rank"`
	LatestGameweek   int            `json:"latest_gameweek"`
	LatestPoints     int            `json:"latest_points"`
	TransfersMade    int            `json:"transfers_made"`
	TransfersCost    int            `json:"transfers_cost"`
	Chips            []chipUsageDTO `json:"chips"`
	FreeHitGameweeks []int          `json:"free_hit_gameweeks"`
	Error            string         `json:"error,omitempty"`
	DurationMs       int64          `json:"duration_ms"`
}

type managersDTO struct {
	League   string              `json:"league"`
	Managers []managerSummaryDTO `json:"managers"`
}

func teamToDTO(t season.Team) teamDTO {
	return teamDTO{
		Code:      t.Code,
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
	}
}

func playerToDTO(p season.Player, position string) playerDTO {
	return playerDTO{
		ID:          p.ID,
		Code:        p.Code,
		TeamCode:    p.TeamCode,
		ElementType: p.ElementType,
		Position:    position,
		WebName:     p.WebName,
		FirstName:   p.FirstName,
		SecondName:  p.SecondName,
		FullName:    p.FullName(),
		Status:      p.Status,
		Available:   p.Available(),
	}
}

func playerCheckToDTO(c usecase.PlayerCheck) playerAvailabilityDTO {
	out := playerAvailabilityDTO{
		PlayerID:  c.PlayerID,
		Status:    c.Status(),
		Owner:     c.OwnedBy,
		Message:   c.Message(),
		IsManager: c.IsManager,
	}
	if c.Known {
		p := playerToDTO(c.Player, c.Position)
		out.Player = &p
	}
	return out
}

func managerSummaryToDTO(s usecase.ManagerSummary) managerSummaryDTO {
	chips := make([]chipUsageDTO, 0, len(s.Chips))
	for _, c := range s.Chips {
		item := chipUsageDTO{Name: c.Name, Gameweek: c.Gameweek}
		if !c.PlayedAt.IsZero() {
			item.PlayedAt = c.PlayedAt.UTC().Format(time.RFC3339)
		}
		chips = append(chips, item)
	}
	freeHits := s.FreeHitGameweeks
	if freeHits == nil {
		freeHits = []int{}
	}

	return managerSummaryDTO{
		ManagerID:        s.ManagerID,
		Label:            s.Label,
		TotalPoints:      s.TotalPoints,
		OverallRank:      s.OverallRank,
		LatestGameweek:   s.LatestGameweek,
		LatestPoints:     s.LatestPoints,
		TransfersMade:    s.TransfersMade,
		TransfersCost:    s.TransfersCost,
		Chips:            chips,
		FreeHitGameweeks: freeHits,
		Error:            s.Error,
		DurationMs:       s.DurationMs,
	}
}
