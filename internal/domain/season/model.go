package season

import "fmt"

// Team is a Premier League club as listed in the season snapshot.
type Team struct {
	Code      int
	ID        int
	Name      string
	ShortName string
}

// Player is a selectable element in the season snapshot.
type Player struct {
	ID          int64
	Code        int64
	TeamCode    int
	ElementType int
	WebName     string
	FirstName   string
	SecondName  string
	Status      string
}

// StatusUnavailable marks players who have left the league.
const StatusUnavailable = "u"

func (p Player) FullName() string {
	return p.FirstName + " " + p.SecondName
}

func (p Player) Available() bool {
	return p.Status != StatusUnavailable
}

// Gameweek is one round of fixtures.
type Gameweek struct {
	ID         int
	Name       string
	IsPrevious bool
	IsCurrent  bool
	IsNext     bool
	Finished   bool
}

// Snapshot is the season-wide data fetched once per process.
type Snapshot struct {
	Teams     []Team
	Players   []Player
	Gameweeks []Gameweek
}

func (s Snapshot) Validate() error {
	seenTeams := make(map[int]struct{}, len(s.Teams))
	for _, t := range s.Teams {
		if _, ok := seenTeams[t.Code]; ok {
			return fmt.Errorf("duplicate team code: %d", t.Code)
		}
		seenTeams[t.Code] = struct{}{}
	}

	seenPlayers := make(map[int64]struct{}, len(s.Players))
	for _, p := range s.Players {
		if _, ok := seenPlayers[p.ID]; ok {
			return fmt.Errorf("duplicate player id: %d", p.ID)
		}
		seenPlayers[p.ID] = struct{}{}
	}

	var previous, current, next int
	for _, gw := range s.Gameweeks {
		if gw.IsPrevious {
			previous++
		}
		if gw.IsCurrent {
			current++
		}
		if gw.IsNext {
			next++
		}
	}
	if previous > 1 || current > 1 || next > 1 {
		return fmt.Errorf("gameweek flags must be held by at most one gameweek")
	}

	return nil
}

// PlayerByID returns the player with the given element id.
func (s Snapshot) PlayerByID(id int64) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// GameweekNumbers holds the flagged gameweek ids. A nil field means no
// gameweek carries that flag.
type GameweekNumbers struct {
	Previous *int
	Current  *int
	Next     *int
}

// ResolveGameweeks derives previous, current and next gameweek numbers.
func ResolveGameweeks(s Snapshot) GameweekNumbers {
	var out GameweekNumbers
	for _, gw := range s.Gameweeks {
		id := gw.ID
		if gw.IsPrevious {
			out.Previous = &id
		}
		if gw.IsCurrent {
			out.Current = &id
		}
		if gw.IsNext {
			out.Next = &id
		}
	}
	return out
}
