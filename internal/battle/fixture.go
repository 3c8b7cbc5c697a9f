package battle

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asandoval/battlecore/internal/dex"
)

// Matchup is a standalone attacker/defender pairing, the input of the
// damagecalc tool and of fixture-driven tests.
type Matchup struct {
	Attacker *Pokemon
	Defender *Pokemon
	Field    Field
}

// yamlMatchupFile is the top-level YAML structure for matchup files.
type yamlMatchupFile struct {
	Attacker yamlPokemon `yaml:"attacker"`
	Defender yamlPokemon `yaml:"defender"`
	Field    yamlField   `yaml:"field"`
}

type yamlSnapshotFile struct {
	OwnActive   yamlPokemon   `yaml:"own_active"`
	OwnReserves []yamlPokemon `yaml:"own_reserves"`
	OppActive   *yamlPokemon  `yaml:"opp_active"`
	OppReserves []yamlPokemon `yaml:"opp_reserves"`
	Field       yamlField     `yaml:"field"`
	Turn        int           `yaml:"turn"`
	Trapped     bool          `yaml:"trapped"`
}

type yamlPokemon struct {
	Species    string     `yaml:"species"`
	Types      []string   `yaml:"types"`
	Base       StatBlock  `yaml:"base"`
	Boosts     Boosts     `yaml:"boosts"`
	HPFraction float64    `yaml:"hp_fraction"`
	Ability    string     `yaml:"ability"`
	Item       string     `yaml:"item"`
	Status     string     `yaml:"status"`
	Fainted    bool       `yaml:"fainted"`
	Moves      []yamlMove `yaml:"moves"`
}

type yamlMove struct {
	ID       string  `yaml:"id"`
	Type     string  `yaml:"type"`
	Category string  `yaml:"category"`
	Power    int     `yaml:"power"`
	Accuracy float64 `yaml:"accuracy"`
	PP       int     `yaml:"pp"`
	MaxPP    int     `yaml:"max_pp"`
}

type yamlField struct {
	Weather string         `yaml:"weather"`
	Terrain string         `yaml:"terrain"`
	OwnSide SideConditions `yaml:"own_side"`
	OppSide SideConditions `yaml:"opp_side"`
}

// LoadMatchup reads and converts a matchup YAML file.
//
// Precondition: path must point to a YAML file conforming to the matchup schema.
// Postcondition: Returns a fully converted Matchup or a non-nil error.
func LoadMatchup(path string) (*Matchup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matchup file %s: %w", path, err)
	}
	return LoadMatchupFromBytes(data)
}

// LoadMatchupFromBytes parses a matchup from YAML bytes with strict field
// checking.
func LoadMatchupFromBytes(data []byte) (*Matchup, error) {
	var file yamlMatchupFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing matchup YAML: %w", err)
	}

	atk, err := convertYAMLPokemon(file.Attacker)
	if err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	def, err := convertYAMLPokemon(file.Defender)
	if err != nil {
		return nil, fmt.Errorf("defender: %w", err)
	}
	fld, err := convertYAMLField(file.Field)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}

	return &Matchup{Attacker: atk, Defender: def, Field: fld}, nil
}

// LoadSnapshot reads and converts a full battle snapshot YAML file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file %s: %w", path, err)
	}

	var file yamlSnapshotFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing snapshot YAML: %w", err)
	}

	own, err := convertYAMLPokemon(file.OwnActive)
	if err != nil {
		return nil, fmt.Errorf("own_active: %w", err)
	}
	s := &Snapshot{
		OwnActive: own,
		Turn:      file.Turn,
		Trapped:   file.Trapped,
	}
	if file.OppActive != nil {
		opp, err := convertYAMLPokemon(*file.OppActive)
		if err != nil {
			return nil, fmt.Errorf("opp_active: %w", err)
		}
		s.OppActive = opp
	}
	for i, yp := range file.OwnReserves {
		p, err := convertYAMLPokemon(yp)
		if err != nil {
			return nil, fmt.Errorf("own_reserves[%d]: %w", i, err)
		}
		s.OwnReserves = append(s.OwnReserves, p)
	}
	for i, yp := range file.OppReserves {
		p, err := convertYAMLPokemon(yp)
		if err != nil {
			return nil, fmt.Errorf("opp_reserves[%d]: %w", i, err)
		}
		s.OppReserves = append(s.OppReserves, p)
	}
	s.Field, err = convertYAMLField(file.Field)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	return s, nil
}

func convertYAMLPokemon(y yamlPokemon) (*Pokemon, error) {
	if y.Species == "" {
		return nil, fmt.Errorf("species must not be empty")
	}
	if len(y.Types) < 1 || len(y.Types) > 2 {
		return nil, fmt.Errorf("species %s: want 1 or 2 types, got %d", y.Species, len(y.Types))
	}
	p := &Pokemon{
		Species:    dex.Normalize(y.Species),
		Base:       y.Base,
		Boosts:     y.Boosts,
		HPFraction: y.HPFraction,
		Ability:    dex.Normalize(y.Ability),
		Item:       dex.Normalize(y.Item),
		Fainted:    y.Fainted,
	}
	for _, name := range y.Types {
		t := dex.ParseType(name)
		if !t.Valid() {
			return nil, fmt.Errorf("species %s: unknown type %q", y.Species, name)
		}
		p.Types = append(p.Types, t)
	}
	st, err := ParseStatus(y.Status)
	if err != nil {
		return nil, fmt.Errorf("species %s: %w", y.Species, err)
	}
	p.Status = st
	if len(y.Moves) > MaxMoves {
		return nil, fmt.Errorf("species %s: at most %d moves, got %d", y.Species, MaxMoves, len(y.Moves))
	}
	for _, ym := range y.Moves {
		mv, err := convertYAMLMove(ym)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", y.Species, err)
		}
		p.Moves = append(p.Moves, mv)
	}
	return p, nil
}

func convertYAMLMove(y yamlMove) (Move, error) {
	cat, err := ParseCategory(y.Category)
	if err != nil {
		return Move{}, fmt.Errorf("move %s: %w", y.ID, err)
	}
	acc := y.Accuracy
	if acc == 0 {
		acc = 1.0
	}
	return Move{
		ID:        dex.Normalize(y.ID),
		Type:      dex.ParseType(y.Type),
		Category:  cat,
		BasePower: y.Power,
		Accuracy:  acc,
		PP:        y.PP,
		MaxPP:     y.MaxPP,
	}, nil
}

func convertYAMLField(y yamlField) (Field, error) {
	w, err := ParseWeather(y.Weather)
	if err != nil {
		return Field{}, err
	}
	tr, err := ParseTerrain(y.Terrain)
	if err != nil {
		return Field{}, err
	}
	return Field{Weather: w, Terrain: tr, OwnSide: y.OwnSide, OppSide: y.OppSide}, nil
}

// ParseStatus maps a fixture status name to its Status value. Empty and
// "none" both mean healthy.
func ParseStatus(s string) (Status, error) {
	switch dex.Normalize(s) {
	case "", "none":
		return StatusNone, nil
	case "brn", "burn":
		return StatusBurn, nil
	case "frz", "freeze":
		return StatusFreeze, nil
	case "par", "paralysis":
		return StatusParalysis, nil
	case "psn", "poison":
		return StatusPoison, nil
	case "tox", "toxic":
		return StatusToxic, nil
	case "slp", "sleep":
		return StatusSleep, nil
	}
	return StatusNone, fmt.Errorf("unknown status %q", s)
}

// ParseCategory maps a fixture category name to its Category value.
func ParseCategory(s string) (Category, error) {
	switch dex.Normalize(s) {
	case "physical":
		return CategoryPhysical, nil
	case "special":
		return CategorySpecial, nil
	case "", "status":
		return CategoryStatus, nil
	}
	return CategoryStatus, fmt.Errorf("unknown category %q", s)
}

// ParseWeather maps a fixture weather name to its Weather value.
func ParseWeather(s string) (Weather, error) {
	switch dex.Normalize(s) {
	case "", "none":
		return WeatherNone, nil
	case "sun", "sunnyday":
		return WeatherSun, nil
	case "rain", "raindance":
		return WeatherRain, nil
	case "sandstorm", "sand":
		return WeatherSandstorm, nil
	case "hail":
		return WeatherHail, nil
	case "snow":
		return WeatherSnow, nil
	case "harshsun", "desolateland":
		return WeatherHarshSun, nil
	case "heavyrain", "primordialsea":
		return WeatherHeavyRain, nil
	case "strongwinds", "deltastream":
		return WeatherStrongWinds, nil
	}
	return WeatherNone, fmt.Errorf("unknown weather %q", s)
}

// ParseTerrain maps a fixture terrain name to its Terrain value.
func ParseTerrain(s string) (Terrain, error) {
	switch dex.Normalize(s) {
	case "", "none":
		return TerrainNone, nil
	case "electric", "electricterrain":
		return TerrainElectric, nil
	case "grassy", "grassyterrain":
		return TerrainGrassy, nil
	case "misty", "mistyterrain":
		return TerrainMisty, nil
	case "psychic", "psychicterrain":
		return TerrainPsychic, nil
	}
	return TerrainNone, fmt.Errorf("unknown terrain %q", s)
}
