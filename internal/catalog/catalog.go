package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Game is one mini-game players can vote for
type Game struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Catalog is the static list of games, default option lists and sounds.
// The declaration order of Games breaks vote ties.
type Catalog struct {
	DefaultGame  string   `yaml:"defaultGame"`
	Games        []Game   `yaml:"games"`
	Roles        []string `yaml:"roles"`
	PlayerStates []string `yaml:"playerStates"`
	PublicStates []string `yaml:"publicStates"`
	GlobalStates []string `yaml:"globalStates"`
	Sounds       []string `yaml:"sounds"`
}

// Default returns the embedded catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file, or returns the embedded catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if len(c.Games) == 0 {
		return nil, errors.New("catalog must declare at least one game")
	}

	if c.DefaultGame == "" {
		c.DefaultGame = c.Games[0].ID
	}

	if !c.HasGame(c.DefaultGame) {
		return nil, fmt.Errorf("default game %q is not declared", c.DefaultGame)
	}

	return &c, nil
}

// GameIDs returns the game identifiers in declaration order
func (c *Catalog) GameIDs() []string {
	ids := make([]string, 0, len(c.Games))
	for _, g := range c.Games {
		ids = append(ids, g.ID)
	}
	return ids
}

// HasGame reports whether the game is declared
func (c *Catalog) HasGame(id string) bool {
	return slices.ContainsFunc(c.Games, func(g Game) bool { return g.ID == id })
}

// HasSound reports whether the sound is declared
func (c *Catalog) HasSound(id string) bool {
	return slices.Contains(c.Sounds, id)
}
