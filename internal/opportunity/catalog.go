package opportunity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const catalogKey = "opportunities"

// Load reads a catalog file in any format viper understands (yaml, json, toml).
// Entries live under the top-level "opportunities" key.
func Load(path string) (*Opportunities, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	raw := v.Get(catalogKey)
	if raw == nil {
		return nil, fmt.Errorf("catalog file %q has no %q key", path, catalogKey)
	}

	return Decode(raw)
}

// Decode converts generic catalog data (as produced by viper or json.Unmarshal
// into any) into validated opportunities.
func Decode(raw any) (*Opportunities, error) {
	var items []*Opportunity

	cfg := &mapstructure.DecoderConfig{
		Result:           &items,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating catalog decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	catalog := New(items...)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks catalog invariants: unique positive IDs, titles present,
// non-negative stipends and parseable reason templates.
func (o *Opportunities) Validate() error {
	var errs []error
	seen := make(map[int]struct{}, o.Len())

	for idx, item := range o.Items {
		if item == nil {
			errs = append(errs, fmt.Errorf("entry %d is empty", idx))
			continue
		}
		if item.ID <= 0 {
			errs = append(errs, fmt.Errorf("entry %d: id must be positive, got %d", idx, item.ID))
		}
		if _, ok := seen[item.ID]; ok {
			errs = append(errs, fmt.Errorf("entry %d: duplicate id %d", idx, item.ID))
		}
		seen[item.ID] = struct{}{}

		if strings.TrimSpace(item.Title) == "" {
			errs = append(errs, fmt.Errorf("entry %d (id %d): title is required", idx, item.ID))
		}
		if item.Stipend < 0 {
			errs = append(errs, fmt.Errorf("entry %d (id %d): stipend must not be negative", idx, item.ID))
		}
		if _, err := ParseReason(fmt.Sprintf("reason-%d", item.ID), item.ReasonTemplate); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (id %d): %w", idx, item.ID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}
