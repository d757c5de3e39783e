package mcpapi

import (
	"context"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/fpl-ownership/internal/domain/league"
	"github.com/riskibarqy/fpl-ownership/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
	"github.com/riskibarqy/fpl-ownership/internal/usecase"
)

func newSeededTools(t *testing.T) *Tools {
	t.Helper()

	logger := logging.NewNop()
	registry := league.Registry{
		Name: "Test League",
		Managers: []league.Manager{
			{ID: memory.ManagerJoel, Label: "joel"},
			{ID: memory.ManagerAlex, Label: "alex"},
			{ID: memory.ManagerRob, Label: "rob"},
		},
	}
	seasons := usecase.NewSeasonService(memory.NewSeasonProvider(memory.SeedSnapshot()), logger)
	resolver := usecase.NewRosterResolver(memory.NewRosterProvider(memory.SeedRosters()))
	owners := usecase.NewOwnershipService(resolver, seasons, registry, usecase.OwnershipOptions{}, logger)
	catalog := usecase.NewCatalogService(seasons, owners, league.DefaultPositions(), league.DefaultManagerPosition)
	managers := usecase.NewManagerService(memory.NewManagerProvider(memory.SeedHistories(), memory.SeedTransfers()), registry, 2, logger)
	return NewTools(seasons, catalog, owners, managers, logger)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %+v", res)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestTools_ListTeams(t *testing.T) {
	tools := newSeededTools(t)

	res, _, err := tools.ListTeams(context.Background(), nil, ListTeamsArgs{})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}

	var teams []teamResult
	if err := sonic.UnmarshalString(resultText(t, res), &teams); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if len(teams) != len(memory.SeedTeams()) || teams[0].Name != "Arsenal" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestTools_ListTeamPlayersCarriesOwner(t *testing.T) {
	tools := newSeededTools(t)

	res, _, err := tools.ListTeamPlayers(context.Background(), nil, ListTeamPlayersArgs{TeamCode: memory.TeamCodeArsenal})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}

	var players []teamPlayerResult
	if err := sonic.UnmarshalString(resultText(t, res), &players); err != nil {
		t.Fatalf("decode players: %v", err)
	}
	owners := make(map[int64]string, len(players))
	for _, p := range players {
		owners[p.ID] = p.Owner
	}
	if owners[8] != "joel" || owners[11] != "alex" || owners[5] != "" {
		t.Fatalf("unexpected owners: %+v", owners)
	}
}

func TestTools_ListTeamPlayersRequiresTeam(t *testing.T) {
	tools := newSeededTools(t)

	res, _, err := tools.ListTeamPlayers(context.Background(), nil, ListTeamPlayersArgs{})
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError || !strings.Contains(resultText(t, res), "team_code is required") {
		t.Fatalf("expected tool error, got %+v", res)
	}
}

func TestTools_CheckPlayer(t *testing.T) {
	tools := newSeededTools(t)

	res, _, err := tools.CheckPlayer(context.Background(), nil, CheckPlayerArgs{PlayerID: 20})
	if err != nil {
		t.Fatalf("check player: %v", err)
	}

	var out checkResult
	if err := sonic.UnmarshalString(resultText(t, res), &out); err != nil {
		t.Fatalf("decode check: %v", err)
	}
	if out.Status != "owned" || out.Owner != "alex" || out.Message != "UNLUCKEEEEE!\nAlex owns Cole Palmer" {
		t.Fatalf("unexpected check result: %+v", out)
	}

	res, _, err = tools.CheckPlayer(context.Background(), nil, CheckPlayerArgs{})
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for missing player id")
	}
}

func TestTools_OwnershipIndexNamesPlayers(t *testing.T) {
	tools := newSeededTools(t)

	res, _, err := tools.OwnershipIndex(context.Background(), nil, OwnershipIndexArgs{})
	if err != nil {
		t.Fatalf("ownership index: %v", err)
	}

	var out ownershipResult
	if err := sonic.UnmarshalString(resultText(t, res), &out); err != nil {
		t.Fatalf("decode index: %v", err)
	}
	if out.League != "Test League" || out.Count != 14 || len(out.Entries) != 14 {
		t.Fatalf("unexpected index: league=%q count=%d entries=%d", out.League, out.Count, len(out.Entries))
	}
	if out.Entries[0].PlayerID != 1 || out.Entries[0].Name != "David Raya Martín" || out.Entries[0].Owner != "joel" {
		t.Fatalf("unexpected first entry: %+v", out.Entries[0])
	}
}

func TestNewServer_RegistersTools(t *testing.T) {
	if NewServer(newSeededTools(t)) == nil {
		t.Fatalf("expected server")
	}
}

func TestTools_ManagerSummaries(t *testing.T) {
	tools := newSeededTools(t)

	res, _, err := tools.ManagerSummaries(context.Background(), nil, ManagerSummariesArgs{})
	if err != nil {
		t.Fatalf("manager summaries: %v", err)
	}

	var out []managerResult
	if err := sonic.UnmarshalString(resultText(t, res), &out); err != nil {
		t.Fatalf("decode summaries: %v", err)
	}
	if len(out) != 3 || out[0].Label != "joel" || out[0].TotalPoints != 187 {
		t.Fatalf("unexpected summaries: %+v", out)
	}
}
