package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/riskibarqy/fpl-ownership/internal/domain/league"
	"github.com/riskibarqy/fpl-ownership/internal/domain/ownership"
	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
)

const (
	optionHeadingWidth = 25
	optionKeySeparator = "__"
)

// CatalogService answers read-only questions about teams, players and who
// owns them.
type CatalogService struct {
	seasons         *SeasonService
	ownership       *OwnershipService
	positions       league.Positions
	managerPosition int
}

func NewCatalogService(seasons *SeasonService, ownership *OwnershipService, positions league.Positions, managerPosition int) *CatalogService {
	if len(positions) == 0 {
		positions = league.DefaultPositions()
	}
	if managerPosition <= 0 {
		managerPosition = league.DefaultManagerPosition
	}

	return &CatalogService{
		seasons:         seasons,
		ownership:       ownership,
		positions:       positions,
		managerPosition: managerPosition,
	}
}

func (s *CatalogService) ListTeams(ctx context.Context) ([]season.Team, error) {
	snapshot, err := s.seasons.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load season snapshot: %w", err)
	}

	out := make([]season.Team, len(snapshot.Teams))
	copy(out, snapshot.Teams)
	return out, nil
}

// ListPlayersForTeam filters by exact team code and orders by position then
// web name. An unknown team yields an empty list.
func (s *CatalogService) ListPlayersForTeam(ctx context.Context, teamCode int) ([]season.Player, error) {
	snapshot, err := s.seasons.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load season snapshot: %w", err)
	}

	out := make([]season.Player, 0, 32)
	for _, p := range snapshot.Players {
		if p.TeamCode == teamCode {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ElementType != out[j].ElementType {
			return out[i].ElementType < out[j].ElementType
		}
		return out[i].WebName < out[j].WebName
	})
	return out, nil
}

// PositionLabel returns the configured label for an element type, or "" when
// the type has none.
func (s *CatalogService) PositionLabel(elementType int) string {
	label, _ := s.positions.Label(elementType)
	return label
}

func (s *CatalogService) DescribeAvailability(ctx context.Context, playerID int64) (ownership.Availability, error) {
	index, err := s.ownership.Index(ctx)
	if err != nil {
		return ownership.Availability{}, fmt.Errorf("load ownership index: %w", err)
	}
	return index.Describe(playerID), nil
}

// PlayerOption is one entry of a grouped player picker. Headings are
// disabled and carry no key.
type PlayerOption struct {
	Key      string
	Text     string
	Disabled bool
}

func (o PlayerOption) IsHeading() bool {
	return o.Disabled
}

// ParseOptionKey splits a key built by PlayerOptions back into its parts.
func ParseOptionKey(key string) (playerID int64, fullName string, position int, err error) {
	parts := strings.Split(key, optionKeySeparator)
	if len(parts) != 3 {
		return 0, "", 0, fmt.Errorf("%w: malformed option key %q", ErrInvalidInput, key)
	}
	playerID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("%w: option key player id: %v", ErrInvalidInput, err)
	}
	position, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, "", 0, fmt.Errorf("%w: option key position: %v", ErrInvalidInput, err)
	}
	return playerID, parts[1], position, nil
}

// PlayerOptions groups a team's selectable players under position headings.
// Unavailable players and players with an unlabelled position are left out.
func (s *CatalogService) PlayerOptions(ctx context.Context, teamCode int) ([]PlayerOption, error) {
	players, err := s.ListPlayersForTeam(ctx, teamCode)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerOption, 0, len(players)+len(s.positions))
	currentPosition := 0
	for _, p := range players {
		if !p.Available() {
			continue
		}
		label, ok := s.positions.Label(p.ElementType)
		if !ok {
			continue
		}
		if p.ElementType != currentPosition {
			currentPosition = p.ElementType
			out = append(out, PlayerOption{
				Text:     centerHeading(" "+strings.ToUpper(label)+" ", optionHeadingWidth, '-'),
				Disabled: true,
			})
		}
		out = append(out, PlayerOption{
			Key:  optionKey(p),
			Text: p.WebName,
		})
	}
	return out, nil
}

func optionKey(p season.Player) string {
	return strconv.FormatInt(p.ID, 10) + optionKeySeparator + p.FullName() + optionKeySeparator + strconv.Itoa(p.ElementType)
}

// centerHeading pads text to width with fill, putting the odd pad character
// on the left when width is odd.
func centerHeading(text string, width int, fill rune) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	margin := width - n
	left := margin/2 + (margin & width & 1)
	right := margin - left
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), right)
}

// PlayerCheck is the result of "can I sign this player".
type PlayerCheck struct {
	ownership.Availability
	Player    season.Player
	Known     bool
	Position  string
	IsManager bool
}

func (s *CatalogService) CheckPlayer(ctx context.Context, playerID int64) (PlayerCheck, error) {
	if playerID <= 0 {
		return PlayerCheck{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	snapshot, err := s.seasons.Snapshot(ctx)
	if err != nil {
		return PlayerCheck{}, fmt.Errorf("load season snapshot: %w", err)
	}
	availability, err := s.DescribeAvailability(ctx, playerID)
	if err != nil {
		return PlayerCheck{}, err
	}

	out := PlayerCheck{Availability: availability}
	if p, ok := snapshot.PlayerByID(playerID); ok {
		out.Player = p
		out.Known = true
		out.Position, _ = s.positions.Label(p.ElementType)
		out.IsManager = p.ElementType == s.managerPosition
	}
	return out, nil
}

var ownerTitle = cases.Title(language.English)

// Message renders the check the way the league expects to read it.
func (c PlayerCheck) Message() string {
	name := c.displayName()
	if c.Owned {
		owner := ownerTitle.String(c.OwnedBy)
		if c.IsManager {
			return fmt.Sprintf("UNLUCKEEEEE!\n%s is %s's assistant manager", name, owner)
		}
		return fmt.Sprintf("UNLUCKEEEEE!\n%s owns %s", owner, name)
	}
	if c.IsManager {
		return name + " is available and willing to assist you. Sign him up quick!"
	}
	return name + " is available for transfer, fill yer boots"
}

func (c PlayerCheck) displayName() string {
	if c.Known {
		return c.Player.FullName()
	}
	return "Player " + strconv.FormatInt(c.PlayerID, 10)
}
