package service

import (
	"fmt"
	"os"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"tandoor-ordering/checkout-svc/internal/domain"
)

// Settings is the checkout page configuration. It is owned by SettingsStore;
// use Update to change it.
type Settings struct {
	TaxRate         decimal.Decimal
	OrderingEnabled bool
	Restaurant      domain.Restaurant
	Location        *time.Location
	CartPage        string
	MenuPage        string
	PublicBaseURL   string
}

type settingsFile struct {
	TaxRate         string            `yaml:"tax_rate"`
	OrderingEnabled bool              `yaml:"ordering_enabled"`
	Timezone        string            `yaml:"timezone"`
	Restaurant      domain.Restaurant `yaml:"restaurant"`
	CartPage        string            `yaml:"cart_page"`
	MenuPage        string            `yaml:"menu_page"`
	PublicBaseURL   string            `yaml:"public_base_url"`
}

func DefaultSettings() Settings {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		loc = time.UTC
	}
	return Settings{
		TaxRate:         decimal.RequireFromString("0.085"),
		OrderingEnabled: false,
		Restaurant: domain.Restaurant{
			Name:    "Tandoor Indian Restaurant",
			Address: "27167 Mission Blvd, Hayward, CA 94544",
			Phone:   "(510) 555-0123",
		},
		Location:      loc,
		CartPage:      "order.php",
		MenuPage:      "menu.php",
		PublicBaseURL: "http://localhost:8080",
	}
}

// LoadSettings reads a YAML file on top of DefaultSettings. Missing keys keep
// their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}

	if file.TaxRate != "" {
		rate, err := decimal.NewFromString(file.TaxRate)
		if err != nil || rate.IsNegative() {
			return settings, fmt.Errorf("invalid tax_rate %q", file.TaxRate)
		}
		settings.TaxRate = rate
	}
	if file.Timezone != "" {
		loc, err := time.LoadLocation(file.Timezone)
		if err != nil {
			return settings, fmt.Errorf("invalid timezone: %w", err)
		}
		settings.Location = loc
	}
	settings.OrderingEnabled = file.OrderingEnabled
	if file.Restaurant.Name != "" {
		settings.Restaurant.Name = file.Restaurant.Name
	}
	if file.Restaurant.Address != "" {
		settings.Restaurant.Address = file.Restaurant.Address
	}
	if file.Restaurant.Phone != "" {
		settings.Restaurant.Phone = file.Restaurant.Phone
	}
	if file.CartPage != "" {
		settings.CartPage = file.CartPage
	}
	if file.MenuPage != "" {
		settings.MenuPage = file.MenuPage
	}
	if file.PublicBaseURL != "" {
		settings.PublicBaseURL = file.PublicBaseURL
	}
	return settings, nil
}

type SettingsStore struct {
	mu       sync.RWMutex
	settings Settings
}

func NewSettingsStore(settings Settings) *SettingsStore {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &SettingsStore{settings: settings}
}

func (s *SettingsStore) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsStore) Update(fn func(*Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
}

func (s *SettingsStore) SetOrderingEnabled(enabled bool) {
	s.Update(func(settings *Settings) { settings.OrderingEnabled = enabled })
}
