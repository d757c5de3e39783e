package mcpapi

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
	"github.com/riskibarqy/fpl-ownership/internal/usecase"
)

const (
	ServerName    = "fpl-ownership-mcp"
	ServerVersion = "1.0.0"
)

type ListTeamsArgs struct{}

type ListTeamPlayersArgs struct {
	TeamCode int `json:"team_code" jsonschema:"Team code from list_teams (required)"`
}

type CheckPlayerArgs struct {
	PlayerID int64 `json:"player_id" jsonschema:"Player element id (required)"`
}

type OwnershipIndexArgs struct{}

type ManagerSummariesArgs struct{}

type teamResult struct {
	Code      int    `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type teamPlayerResult struct {
	ID        int64  `json:"id"`
	WebName   string `json:"web_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position,omitempty"`
	Available bool   `json:"available"`
	Owner     string `json:"owner,omitempty"`
}

type checkResult struct {
	PlayerID int64  `json:"player_id"`
	Status   string `json:"status"`
	Owner    string `json:"owner,omitempty"`
	Message  string `json:"message"`
}

type ownershipResult struct {
	League  string                 `json:"league"`
	Count   int                    `json:"count"`
	Entries []ownershipEntryResult `json:"entries"`
}

type ownershipEntryResult struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name,omitempty"`
	Owner    string `json:"owner"`
}

type managerResult struct {
	ManagerID        int64  `json:"manager_id"`
	Label            string `json:"label"`
	TotalPoints      int    `json:"total_points"`
	OverallRank      int64  `json:"overall_rank"`
	LatestGameweek   int    `json:"latest_gameweek"`
	LatestPoints     int    `json:"latest_points"`
	TransfersMade    int    `json:"transfers_made"`
	FreeHitGameweeks []int  `json:"free_hit_gameweeks,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Tools exposes the ownership usecases as MCP tool handlers.
type Tools struct {
	seasons   *usecase.SeasonService
	catalog   *usecase.CatalogService
	ownership *usecase.OwnershipService
	managers  *usecase.ManagerService
	logger    *logging.Logger
}

func NewTools(
	seasons *usecase.SeasonService,
	catalog *usecase.CatalogService,
	ownership *usecase.OwnershipService,
	managers *usecase.ManagerService,
	logger *logging.Logger,
) *Tools {
	if logger == nil {
		logger = logging.Default()
	}
	return &Tools{
		seasons:   seasons,
		catalog:   catalog,
		ownership: ownership,
		managers:  managers,
		logger:    logger,
	}
}

func NewServer(tools *Tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_teams",
		Description: "Premier League teams with the codes used by list_team_players",
	}, tools.ListTeams)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_team_players",
		Description: "A team's players ordered by position, with the league owner of each",
	}, tools.ListTeamPlayers)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_player",
		Description: "Whether a player is free to sign or which league manager owns them",
	}, tools.CheckPlayer)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ownership_index",
		Description: "Every player owned in the league and the owning manager",
	}, tools.OwnershipIndex)
	if tools.managers != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "manager_summaries",
			Description: "Season points, rank, transfers and chips for each league manager",
		}, tools.ManagerSummaries)
	}

	return server
}

func (t *Tools) ListTeams(ctx context.Context, _ *mcp.CallToolRequest, _ ListTeamsArgs) (*mcp.CallToolResult, any, error) {
	teams, err := t.catalog.ListTeams(ctx)
	if err != nil {
		return t.toolError(ctx, "list_teams", err), nil, nil
	}

	out := make([]teamResult, 0, len(teams))
	for _, team := range teams {
		out = append(out, teamResult{Code: team.Code, Name: team.Name, ShortName: team.ShortName})
	}
	return toolJSON(out)
}

func (t *Tools) ListTeamPlayers(ctx context.Context, _ *mcp.CallToolRequest, args ListTeamPlayersArgs) (*mcp.CallToolResult, any, error) {
	if args.TeamCode <= 0 {
		return t.toolError(ctx, "list_team_players", fmt.Errorf("%w: team_code is required", usecase.ErrInvalidInput)), nil, nil
	}

	players, err := t.catalog.ListPlayersForTeam(ctx, args.TeamCode)
	if err != nil {
		return t.toolError(ctx, "list_team_players", err), nil, nil
	}
	index, err := t.ownership.Index(ctx)
	if err != nil {
		return t.toolError(ctx, "list_team_players", err), nil, nil
	}

	out := make([]teamPlayerResult, 0, len(players))
	for _, p := range players {
		owner, _ := index.Owner(p.ID)
		out = append(out, teamPlayerResult{
			ID:        p.ID,
			WebName:   p.WebName,
			FullName:  p.FullName(),
			Position:  t.catalog.PositionLabel(p.ElementType),
			Available: p.Available(),
			Owner:     owner,
		})
	}
	return toolJSON(out)
}

func (t *Tools) CheckPlayer(ctx context.Context, _ *mcp.CallToolRequest, args CheckPlayerArgs) (*mcp.CallToolResult, any, error) {
	check, err := t.catalog.CheckPlayer(ctx, args.PlayerID)
	if err != nil {
		return t.toolError(ctx, "check_player", err), nil, nil
	}

	return toolJSON(checkResult{
		PlayerID: check.PlayerID,
		Status:   check.Status(),
		Owner:    check.OwnedBy,
		Message:  check.Message(),
	})
}

func (t *Tools) OwnershipIndex(ctx context.Context, _ *mcp.CallToolRequest, _ OwnershipIndexArgs) (*mcp.CallToolResult, any, error) {
	index, err := t.ownership.Index(ctx)
	if err != nil {
		return t.toolError(ctx, "ownership_index", err), nil, nil
	}
	snapshot, err := t.seasons.Snapshot(ctx)
	if err != nil {
		return t.toolError(ctx, "ownership_index", err), nil, nil
	}

	entries := index.Entries()
	out := ownershipResult{
		League:  t.ownership.Registry().Name,
		Count:   index.Len(),
		Entries: make([]ownershipEntryResult, 0, len(entries)),
	}
	for _, e := range entries {
		item := ownershipEntryResult{PlayerID: e.PlayerID, Owner: e.Owner}
		if p, ok := snapshot.PlayerByID(e.PlayerID); ok {
			item.Name = p.FullName()
		}
		out.Entries = append(out.Entries, item)
	}
	return toolJSON(out)
}

func (t *Tools) ManagerSummaries(ctx context.Context, _ *mcp.CallToolRequest, _ ManagerSummariesArgs) (*mcp.CallToolResult, any, error) {
	summaries, err := t.managers.ListSummaries(ctx)
	if err != nil {
		return t.toolError(ctx, "manager_summaries", err), nil, nil
	}
	out := make([]managerResult, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, managerResult{
			ManagerID:        s.ManagerID,
			Label:            s.Label,
			TotalPoints:      s.TotalPoints,
			OverallRank:      s.OverallRank,
			LatestGameweek:   s.LatestGameweek,
			LatestPoints:     s.LatestPoints,
			TransfersMade:    s.TransfersMade,
			FreeHitGameweeks: s.FreeHitGameweeks,
			Error:            s.Error,
		})
	}
	return toolJSON(out)
}

func (t *Tools) toolError(ctx context.Context, tool string, err error) *mcp.CallToolResult {
	t.logger.WarnContext(ctx, "mcp tool failed", "tool", tool, "error", err)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}
