package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type propertyFixture struct {
	domain.Property
	Prices []domain.Price `json:"prices"`
}

type fixtures struct {
	Users      []domain.User     `json:"users"`
	Properties []propertyFixture `json:"properties"`
}

// LoadFixtures seeds users, properties and their price tables from a JSON file.
func (s *Store) LoadFixtures(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var f fixtures
	if err = json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, u := range f.Users {
		s.AddUser(u)
	}
	for _, p := range f.Properties {
		s.AddProperty(p.Property, p.Prices...)
	}

	return nil
}
