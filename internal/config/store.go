package config

import "github.com/umalmyha/customer-accounts/internal/view"

// Store is read-only key-value view over Config
type Store struct {
	values map[string]string
}

// NewStore builds Store from Config
func NewStore(cfg Config) *Store {
	return &Store{
		values: map[string]string{
			view.CustomerSectionNameConfigKey: cfg.ViewCfg.CommerceCustomersSectionName,
		},
	}
}

// Get returns empty string for unknown key
func (s *Store) Get(key string) string {
	return s.values[key]
}
