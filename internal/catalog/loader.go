package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/gameitems/internal/domain"
	"github.com/osse101/gameitems/internal/inventory"
	"github.com/osse101/gameitems/internal/item"
	"github.com/osse101/gameitems/internal/logger"
	"github.com/osse101/gameitems/internal/modifier"
	"github.com/osse101/gameitems/internal/validation"
)

// ErrInvalidCatalog is returned when catalog data fails schema or semantic checks
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed seed.json
var seedData []byte

//go:embed seed.schema.json
var schemaData []byte

// Config represents the JSON catalog of items and modifiers
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items     []ItemDef     `json:"items"`
	Modifiers []ModifierDef `json:"modifiers"`
}

// ItemDef represents a single item definition. Armour uses Protection,
// weapons use Damage and Speed.
type ItemDef struct {
	ID         string          `json:"id"`
	Category   domain.Category `json:"category"`
	Level      int             `json:"level"`
	Rarity     domain.Rarity   `json:"rarity"`
	Damage     float64         `json:"damage,omitempty"`
	Speed      float64         `json:"speed,omitempty"`
	Protection float64         `json:"protection,omitempty"`
}

// FilterDef represents one filter of a modifier. Omitted fields are unconstrained.
type FilterDef struct {
	MinLevel int             `json:"min_level,omitempty"`
	Rarity   domain.Rarity   `json:"rarity,omitempty"`
	Category domain.Category `json:"category,omitempty"`
}

// ModifierDef represents a single modifier definition
type ModifierDef struct {
	ID        string            `json:"id"`
	Effect    domain.EffectKind `json:"effect"`
	Magnitude float64           `json:"magnitude"`
	Filters   []FilterDef       `json:"filters"`
}

// Loader handles loading, validating and building catalogs
type Loader interface {
	Load(data []byte) (*Config, error)
	Validate(ctx context.Context, config *Config) error
	Build(ctx context.Context, config *Config) (*inventory.Inventory, *modifier.List, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Default loads, validates and builds the embedded default catalog
func Default(ctx context.Context) (*inventory.Inventory, *modifier.List, error) {
	l := NewLoader()

	config, err := l.Load(seedData)
	if err != nil {
		return nil, nil, err
	}
	if err := l.Validate(ctx, config); err != nil {
		return nil, nil, err
	}
	return l.Build(ctx, config)
}

// Load checks data against the catalog schema and parses it
func (l *catalogLoader) Load(data []byte) (*Config, error) {
	if err := l.schemaValidator.Register(SchemaName, schemaData); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaRegisterFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, ErrInvalidCatalog, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}

	return &config, nil
}

// Validate checks the parsed catalog for errors the schema cannot express.
// Duplicate ids are only logged; ids are unique by convention.
func (l *catalogLoader) Validate(ctx context.Context, config *Config) error {
	log := logger.FromContext(ctx)

	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	itemIDs := make(map[string]bool, len(config.Items))
	for i, def := range config.Items {
		if def.ID == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidCatalog, i)
		}
		if itemIDs[def.ID] {
			log.Warn(LogMsgDuplicateItem, "id", def.ID)
		}
		itemIDs[def.ID] = true
	}

	modifierIDs := make(map[string]bool, len(config.Modifiers))
	for i, def := range config.Modifiers {
		if def.ID == "" {
			return fmt.Errorf(ErrFmtModifierAtIndexEmpty, ErrInvalidCatalog, i)
		}
		if modifierIDs[def.ID] {
			log.Warn(LogMsgDuplicateModifier, "id", def.ID)
		}
		modifierIDs[def.ID] = true

		if len(def.Filters) == 0 {
			log.Warn(LogMsgEmptyFilters, "id", def.ID)
		}
	}

	return nil
}

// Build constructs the inventory and modifier list described by config, preserving order
func (l *catalogLoader) Build(ctx context.Context, config *Config) (*inventory.Inventory, *modifier.List, error) {
	if config == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgConfigNil)
	}

	inv := inventory.New()
	for _, def := range config.Items {
		it, err := buildItem(def)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrFmtBuildItem, ErrInvalidCatalog, def.ID, err)
		}
		inv.Add(it)
	}

	mods := modifier.NewList()
	for _, def := range config.Modifiers {
		m, err := buildModifier(def)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrFmtBuildModifier, ErrInvalidCatalog, def.ID, err)
		}
		mods.Add(m)
	}

	logger.FromContext(ctx).Debug(LogMsgCatalogBuilt,
		"version", config.Version,
		"items", inv.Len(),
		"modifiers", mods.Len())

	return inv, mods, nil
}

func buildItem(def ItemDef) (item.Item, error) {
	if def.Category == domain.CategoryArmour {
		a, err := item.NewArmour(item.ArmourParams{
			ID:         def.ID,
			Level:      def.Level,
			Rarity:     def.Rarity,
			Protection: def.Protection,
		})
		if err != nil {
			return nil, err
		}
		return a, nil
	}

	w, err := item.NewWeapon(item.WeaponParams{
		ID:       def.ID,
		Category: def.Category,
		Level:    def.Level,
		Rarity:   def.Rarity,
		Damage:   def.Damage,
		Speed:    def.Speed,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func buildModifier(def ModifierDef) (*modifier.Modifier, error) {
	m, err := modifier.New(modifier.Params{
		ID:        def.ID,
		Effect:    def.Effect,
		Magnitude: def.Magnitude,
	})
	if err != nil {
		return nil, err
	}

	for _, f := range def.Filters {
		if err := m.AddFilter(modifier.Filter{
			MinLevel: f.MinLevel,
			Rarity:   f.Rarity,
			Category: f.Category,
		}); err != nil {
			return nil, err
		}
	}

	return m, nil
}
