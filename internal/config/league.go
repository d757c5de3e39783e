package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fpl-ownership/internal/domain/league"
)

const DefaultLeagueName = "Guinness Deep Fantasy Premier League 24/25"

// LeagueSettings is the resolved league membership and display setup.
type LeagueSettings struct {
	Registry        league.Registry
	Positions       league.Positions
	ManagerPosition int
}

type leagueFile struct {
	Name            string         `yaml:"name" validate:"required"`
	Managers        []leagueMember `yaml:"managers" validate:"required,min=1,dive"`
	Positions       map[int]string `yaml:"positions" validate:"omitempty,dive,keys,gt=0,endkeys,required"`
	ManagerPosition int            `yaml:"manager_position" validate:"gte=0"`
}

type leagueMember struct {
	ID    int64  `yaml:"id" validate:"gt=0"`
	Label string `yaml:"label" validate:"required"`
}

var leagueValidator = validator.New(validator.WithRequiredStructEnabled())

// DefaultLeague is the membership used when no league file is configured.
func DefaultLeague() LeagueSettings {
	return LeagueSettings{
		Registry: league.Registry{
			Name: DefaultLeagueName,
			Managers: []league.Manager{
				{ID: 4679310, Label: "joel"},
				{ID: 4680239, Label: "alex"},
				{ID: 4680068, Label: "rob"},
				{ID: 4679848, Label: "danny"},
				{ID: 4679423, Label: "michael"},
				{ID: 610713, Label: "andy"},
				{ID: 4680327, Label: "james"},
				{ID: 4609896, Label: "jake"},
			},
		},
		Positions:       league.DefaultPositions(),
		ManagerPosition: league.DefaultManagerPosition,
	}
}

// LoadLeague reads the league file at path, or the defaults when path is
// empty, then applies the managers override ("id:label,...") if set.
func LoadLeague(path, managersOverride string) (LeagueSettings, error) {
	settings := DefaultLeague()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return LeagueSettings{}, fmt.Errorf("open LEAGUE_CONFIG_PATH: %w", err)
		}
		defer f.Close()

		settings, err = decodeLeague(f)
		if err != nil {
			return LeagueSettings{}, fmt.Errorf("load league file %s: %w", path, err)
		}
	}

	if strings.TrimSpace(managersOverride) != "" {
		managers, err := parseManagerList(managersOverride)
		if err != nil {
			return LeagueSettings{}, fmt.Errorf("parse FPL_MANAGERS: %w", err)
		}
		settings.Registry.Managers = managers
	}

	if err := settings.Registry.Validate(); err != nil {
		return LeagueSettings{}, fmt.Errorf("validate league: %w", err)
	}
	return settings, nil
}

func decodeLeague(r io.Reader) (LeagueSettings, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file leagueFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return LeagueSettings{}, fmt.Errorf("league file is empty")
		}
		return LeagueSettings{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := leagueValidator.Struct(file); err != nil {
		return LeagueSettings{}, fmt.Errorf("invalid league file: %w", err)
	}

	out := LeagueSettings{
		Registry:        league.Registry{Name: strings.TrimSpace(file.Name)},
		Positions:       league.DefaultPositions(),
		ManagerPosition: league.DefaultManagerPosition,
	}
	for _, m := range file.Managers {
		out.Registry.Managers = append(out.Registry.Managers, league.Manager{ID: m.ID, Label: strings.TrimSpace(m.Label)})
	}
	if len(file.Positions) > 0 {
		out.Positions = make(league.Positions, len(file.Positions))
		for code, label := range file.Positions {
			out.Positions[code] = strings.TrimSpace(label)
		}
	}
	if file.ManagerPosition > 0 {
		out.ManagerPosition = file.ManagerPosition
	}
	return out, nil
}

// parseManagerList keeps the order of the input; it is the merge order of
// the ownership index.
func parseManagerList(raw string) ([]league.Manager, error) {
	out := make([]league.Manager, 0, 8)
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid manager item %q, expected id:label", item)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(segments[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid manager id in item %q: %w", item, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("manager id must be > 0 in item %q", item)
		}
		label := strings.TrimSpace(segments[1])
		if label == "" {
			return nil, fmt.Errorf("empty label in item %q", item)
		}

		out = append(out, league.Manager{ID: id, Label: label})
	}
	return out, nil
}
