package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Roster is the static directory the calendar works against: which
// technicians can be assigned and which teams exist. It is loaded once at
// startup; there is no roster management surface.
type Roster struct {
	Technicians []string `yaml:"technicians"`
	Teams       []string `yaml:"teams"`
}

func DefaultRoster() Roster {
	return Roster{
		Technicians: []string{
			"Joseph Gordon",
			"Ari Tan",
			"Karen Samuels",
			"Luca Pereira",
			"Jasper Estrada",
			"Nora Ahmed",
		},
		Teams: []string{
			"Electrical team",
			"Hull inspection team",
			"Engine room team",
		},
	}
}

// LoadRoster reads a YAML roster file. An empty path or a missing file
// yields the built-in default roster; a present but unreadable file is an
// error so a typo'd path doesn't silently fall back.
func LoadRoster(path string) (Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultRoster(), nil
		}
		return Roster{}, err
	}

	var roster Roster
	if err = yaml.Unmarshal(data, &roster); err != nil {
		return Roster{}, err
	}
	roster.normalize()

	return roster, nil
}

func (roster *Roster) normalize() {
	defaults := DefaultRoster()
	if len(roster.Technicians) == 0 {
		roster.Technicians = defaults.Technicians
	}
	if len(roster.Teams) == 0 {
		roster.Teams = defaults.Teams
	}
}
