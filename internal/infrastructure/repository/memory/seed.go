package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fpl-ownership/internal/domain/manager"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
)

const (
	TeamCodeArsenal   = 3
	TeamCodeChelsea   = 8
	TeamCodeLiverpool = 14
	TeamCodeManCity   = 43

	SeedCurrentGameweek = 3
)

// Default league members used by the seeded providers.
const (
	ManagerJoel  int64 = 4679310
	ManagerAlex  int64 = 4680239
	ManagerRob   int64 = 4680068
	ManagerDanny int64 = 4679848
)

func SeedTeams() []season.Team {
	return []season.Team{
		{Code: TeamCodeArsenal, ID: 1, Name: "Arsenal", ShortName: "ARS"},
		{Code: TeamCodeChelsea, ID: 6, Name: "Chelsea", ShortName: "CHE"},
		{Code: TeamCodeLiverpool, ID: 12, Name: "Liverpool", ShortName: "LIV"},
		{Code: TeamCodeManCity, ID: 13, Name: "Man City", ShortName: "MCI"},
	}
}

func SeedPlayers() []season.Player {
	return []season.Player{
		{ID: 1, Code: 223340, TeamCode: TeamCodeArsenal, ElementType: 1, WebName: "Raya", FirstName: "David", SecondName: "Raya Martín", Status: "a"},
		{ID: 3, Code: 462424, TeamCode: TeamCodeArsenal, ElementType: 2, WebName: "Saliba", FirstName: "William", SecondName: "Saliba", Status: "a"},
		{ID: 5, Code: 226597, TeamCode: TeamCodeArsenal, ElementType: 2, WebName: "Gabriel", FirstName: "Gabriel", SecondName: "dos Santos Magalhães", Status: "d"},
		{ID: 7, Code: 184029, TeamCode: TeamCodeArsenal, ElementType: 3, WebName: "Ødegaard", FirstName: "Martin", SecondName: "Ødegaard", Status: "a"},
		{ID: 8, Code: 223094, TeamCode: TeamCodeArsenal, ElementType: 3, WebName: "Saka", FirstName: "Bukayo", SecondName: "Saka", Status: "a"},
		{ID: 9, Code: 219847, TeamCode: TeamCodeArsenal, ElementType: 4, WebName: "Havertz", FirstName: "Kai", SecondName: "Havertz", Status: "a"},
		{ID: 10, Code: 100001, TeamCode: TeamCodeArsenal, ElementType: 4, WebName: "Nketiah", FirstName: "Eddie", SecondName: "Nketiah", Status: "u"},
		{ID: 11, Code: 900003, TeamCode: TeamCodeArsenal, ElementType: 5, WebName: "Arteta", FirstName: "Mikel", SecondName: "Arteta", Status: "a"},
		{ID: 20, Code: 244851, TeamCode: TeamCodeChelsea, ElementType: 3, WebName: "Palmer", FirstName: "Cole", SecondName: "Palmer", Status: "a"},
		{ID: 21, Code: 231747, TeamCode: TeamCodeChelsea, ElementType: 4, WebName: "Jackson", FirstName: "Nicolas", SecondName: "Jackson", Status: "a"},
		{ID: 30, Code: 116535, TeamCode: TeamCodeLiverpool, ElementType: 1, WebName: "Alisson", FirstName: "Alisson", SecondName: "Becker", Status: "a"},
		{ID: 31, Code: 97032, TeamCode: TeamCodeLiverpool, ElementType: 2, WebName: "Virgil", FirstName: "Virgil", SecondName: "van Dijk", Status: "a"},
		{ID: 32, Code: 169187, TeamCode: TeamCodeLiverpool, ElementType: 2, WebName: "Alexander-Arnold", FirstName: "Trent", SecondName: "Alexander-Arnold", Status: "a"},
		{ID: 33, Code: 118748, TeamCode: TeamCodeLiverpool, ElementType: 3, WebName: "M.Salah", FirstName: "Mohamed", SecondName: "Salah", Status: "a"},
		{ID: 34, Code: 900014, TeamCode: TeamCodeLiverpool, ElementType: 5, WebName: "Slot", FirstName: "Arne", SecondName: "Slot", Status: "a"},
		{ID: 40, Code: 121160, TeamCode: TeamCodeManCity, ElementType: 1, WebName: "Ederson M.", FirstName: "Ederson", SecondName: "Santana de Moraes", Status: "a"},
		{ID: 41, Code: 61366, TeamCode: TeamCodeManCity, ElementType: 3, WebName: "De Bruyne", FirstName: "Kevin", SecondName: "De Bruyne", Status: "i"},
		{ID: 42, Code: 223944, TeamCode: TeamCodeManCity, ElementType: 4, WebName: "Haaland", FirstName: "Erling", SecondName: "Haaland", Status: "a"},
	}
}

// SeedGameweeks lays out a 38 week season with SeedCurrentGameweek live.
func SeedGameweeks() []season.Gameweek {
	out := make([]season.Gameweek, 0, roster.MaxGameweek)
	for id := roster.MinGameweek; id <= roster.MaxGameweek; id++ {
		out = append(out, season.Gameweek{
			ID:         id,
			Name:       fmt.Sprintf("Gameweek %d", id),
			IsPrevious: id == SeedCurrentGameweek-1,
			IsCurrent:  id == SeedCurrentGameweek,
			IsNext:     id == SeedCurrentGameweek+1,
			Finished:   id < SeedCurrentGameweek,
		})
	}
	return out
}

func SeedSnapshot() season.Snapshot {
	return season.Snapshot{
		Teams:     SeedTeams(),
		Players:   SeedPlayers(),
		Gameweeks: SeedGameweeks(),
	}
}

// SeedRosters covers the resolver paths: a live roster, a free hit week,
// a missing week and a manager with no roster at all.
func SeedRosters() []roster.Roster {
	return []roster.Roster{
		{ManagerID: ManagerJoel, Gameweek: 3, PlayerIDs: []int64{1, 3, 8, 33, 42}},
		{ManagerID: ManagerAlex, Gameweek: 3, ActiveChip: roster.ChipFreeHit, PlayerIDs: []int64{8, 20, 41}},
		{ManagerID: ManagerAlex, Gameweek: 2, PlayerIDs: []int64{30, 31, 20, 11}},
		{ManagerID: ManagerRob, Gameweek: 1, PlayerIDs: []int64{40, 32, 7, 9, 34}},
	}
}

func SeedHistories() []manager.History {
	played := time.Date(2024, 8, 30, 17, 45, 0, 0, time.UTC)
	return []manager.History{
		{
			ManagerID: ManagerJoel,
			Gameweeks: []manager.GameweekHistory{
				{Gameweek: 1, Points: 64, TotalPoints: 64, OverallRank: 1240311, Value: 1000},
				{Gameweek: 2, Points: 51, TotalPoints: 115, OverallRank: 1933020, Transfers: 1, Value: 1002},
				{Gameweek: 3, Points: 72, TotalPoints: 187, OverallRank: 801122, Transfers: 2, TransfersCost: 4, Value: 1004},
			},
		},
		{
			ManagerID: ManagerAlex,
			Gameweeks: []manager.GameweekHistory{
				{Gameweek: 1, Points: 58, TotalPoints: 58, OverallRank: 2410007, Value: 1000},
				{Gameweek: 2, Points: 70, TotalPoints: 128, OverallRank: 1099321, Value: 1001},
				{Gameweek: 3, Points: 44, TotalPoints: 172, OverallRank: 1500450, Value: 1001},
			},
			Chips: []manager.ChipUsage{{Name: roster.ChipFreeHit, Gameweek: 3, PlayedAt: played}},
		},
	}
}

func SeedTransfers() []manager.Transfer {
	made := time.Date(2024, 8, 23, 9, 12, 0, 0, time.UTC)
	return []manager.Transfer{
		{ManagerID: ManagerJoel, Gameweek: 2, ElementIn: 8, ElementOut: 7, CostIn: 100, CostOut: 85, MadeAt: made},
		{ManagerID: ManagerJoel, Gameweek: 3, ElementIn: 33, ElementOut: 9, CostIn: 125, CostOut: 80, MadeAt: made.Add(7 * 24 * time.Hour)},
		{ManagerID: ManagerJoel, Gameweek: 3, ElementIn: 42, ElementOut: 21, CostIn: 150, CostOut: 75, MadeAt: made.Add(7 * 24 * time.Hour)},
	}
}
