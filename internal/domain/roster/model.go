package roster

import "fmt"

const (
	MinGameweek = 1
	MaxGameweek = 38

	// ChipFreeHit marks a one-week substitute squad that does not reflect
	// season-long ownership.
	ChipFreeHit = "freehit"
)

// Roster is a manager's squad for one gameweek.
type Roster struct {
	ManagerID  int64
	Gameweek   int
	ActiveChip string
	PlayerIDs  []int64
}

func (r Roster) IsFreeHit() bool {
	return r.ActiveChip == ChipFreeHit
}

func (r Roster) IsEmpty() bool {
	return len(r.PlayerIDs) == 0
}

// ValidGameweek reports whether gw is inside the season range.
func ValidGameweek(gw int) bool {
	return gw >= MinGameweek && gw <= MaxGameweek
}

func Empty(managerID int64) Roster {
	return Roster{ManagerID: managerID, PlayerIDs: []int64{}}
}

func (r Roster) Validate() error {
	if r.ManagerID <= 0 {
		return fmt.Errorf("roster manager id must be greater than zero")
	}
	if !ValidGameweek(r.Gameweek) {
		return fmt.Errorf("roster gameweek %d out of range", r.Gameweek)
	}
	return nil
}
