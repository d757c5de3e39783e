package manager

import "time"

// GameweekHistory is a manager's result for one finished or live gameweek.
type GameweekHistory struct {
	Gameweek      int
	Points        int
	TotalPoints   int
	OverallRank   int64
	Transfers     int
	TransfersCost int
	PointsOnBench int
	Bank          int
	Value         int
}

// ChipUsage records a chip played in a gameweek.
type ChipUsage struct {
	Name     string
	Gameweek int
	PlayedAt time.Time
}

// History is the season record of one manager entry.
type History struct {
	ManagerID int64
	Gameweeks []GameweekHistory
	Chips     []ChipUsage
}

// Latest returns the most recent gameweek row.
func (h History) Latest() (GameweekHistory, bool) {
	if len(h.Gameweeks) == 0 {
		return GameweekHistory{}, false
	}
	latest := h.Gameweeks[0]
	for _, gw := range h.Gameweeks[1:] {
		if gw.Gameweek > latest.Gameweek {
			latest = gw
		}
	}
	return latest, true
}

// ChipGameweeks lists the gameweeks in which the named chip was played.
func (h History) ChipGameweeks(name string) []int {
	out := make([]int, 0, 2)
	for _, chip := range h.Chips {
		if chip.Name == name {
			out = append(out, chip.Gameweek)
		}
	}
	return out
}

// Transfer moves one player out of a squad and another in.
type Transfer struct {
	ManagerID  int64
	Gameweek   int
	ElementIn  int64
	ElementOut int64
	CostIn     int
	CostOut    int
	MadeAt     time.Time
}
