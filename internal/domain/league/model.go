package league

import (
	"fmt"
	"strings"
)

// Manager is a league member and the label shown as an owner.
type Manager struct {
	ID    int64
	Label string
}

// Registry is the fixed, ordered league membership.
type Registry struct {
	Name     string
	Managers []Manager
}

func (r Registry) Validate() error {
	if len(r.Managers) == 0 {
		return fmt.Errorf("league registry requires at least one manager")
	}
	seen := make(map[int64]struct{}, len(r.Managers))
	for _, m := range r.Managers {
		if m.ID <= 0 {
			return fmt.Errorf("manager id must be greater than zero")
		}
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("manager %d label is required", m.ID)
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("duplicate manager id: %d", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

func (r Registry) Label(managerID int64) (string, bool) {
	for _, m := range r.Managers {
		if m.ID == managerID {
			return m.Label, true
		}
	}
	return "", false
}

// Positions maps element type codes to display labels.
type Positions map[int]string

// DefaultPositions is the 24/25 element type table, including the
// assistant manager slot.
func DefaultPositions() Positions {
	return Positions{
		1: "goalkeepers",
		2: "defenders",
		3: "midfielders",
		4: "forwards",
		5: "manager",
	}
}

func (p Positions) Label(code int) (string, bool) {
	label, ok := p[code]
	return label, ok
}

// DefaultManagerPosition is the element type used for assistant managers.
const DefaultManagerPosition = 5
