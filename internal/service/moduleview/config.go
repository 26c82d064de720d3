package moduleview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// Config is a compiled module configuration: every dimension validated,
// every bound clamped. Tags are carried as names; they resolve to ids at
// evaluation time so that a module can reference tags created after it.
type Config struct {
	Kinds          []domain.NodeKind
	ParentID       *uuid.UUID
	TopLevelOnly   bool
	DateField      domain.DateField
	DateFrom       *time.Time
	DateTo         *time.Time
	Search         *string
	Custom         []domain.CustomFilter
	TagNames       []string
	IncludeDeleted bool

	SortBy    domain.SortField
	SortOrder domain.SortOrder
	Limit     int

	// Applied lists the filter dimensions the config actually uses, in
	// evaluation order.
	Applied []string
}

// Raw wire shapes. Unknown keys are ignored on purpose: configs written by
// newer clients must still evaluate on older servers.
type rawConfig struct {
	Filters *rawFilters `json:"filters"`
	Sort    *rawSort    `json:"sort"`
	Limit   *int        `json:"limit"`
}

type rawFilters struct {
	Kinds          []string        `json:"kinds"`
	ParentID       json.RawMessage `json:"parentId"`
	DateRange      *rawDateRange   `json:"dateRange"`
	Search         *string         `json:"search"`
	CustomFilters  json.RawMessage `json:"customFilters"`
	Tags           []string        `json:"tags"`
	IncludeDeleted bool            `json:"includeDeleted"`
}

type rawDateRange struct {
	Field string  `json:"field"`
	From  *string `json:"from"`
	To    *string `json:"to"`
}

type rawSort struct {
	By    string `json:"by"`
	Order string `json:"order"`
}

// rawCustomRange is the object form of a customFilters value.
type rawCustomRange struct {
	Eq  json.RawMessage `json:"eq"`
	GTE *float64        `json:"gte"`
	LTE *float64        `json:"lte"`
}

// ParseConfig compiles a raw module config blob. Malformed JSON, wrong-typed
// fields and unparseable dates are rejected with a ValidationError. Unknown
// enum values degrade instead of erroring: unrecognized sort and date fields
// fall back to their defaults and unrecognized kinds pass through to match
// nothing, so saved views keep evaluating as the vocabulary grows.
func ParseConfig(raw json.RawMessage) (*Config, error) {
	cfg := &Config{
		DateField: domain.DateFieldCreatedAt,
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
		Limit:     DefaultQueryLimit,
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	var rc rawConfig
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, domain.NewValidationError("config", "invalid JSON: "+err.Error())
	}

	if rc.Filters != nil {
		if err := cfg.compileFilters(rc.Filters); err != nil {
			return nil, err
		}
	}

	if rc.Sort != nil {
		switch domain.SortField(rc.Sort.By) {
		case domain.SortByCreatedAt, domain.SortByUpdatedAt, domain.SortByName:
			cfg.SortBy = domain.SortField(rc.Sort.By)
		}
		if domain.SortOrder(rc.Sort.Order) == domain.SortAsc {
			cfg.SortOrder = domain.SortAsc
		}
	}

	if rc.Limit != nil {
		switch {
		case *rc.Limit <= 0:
			cfg.Limit = DefaultQueryLimit
		case *rc.Limit > MaxQueryLimit:
			cfg.Limit = MaxQueryLimit
		default:
			cfg.Limit = *rc.Limit
		}
	}

	return cfg, nil
}

func (c *Config) compileFilters(f *rawFilters) error {
	if len(f.Kinds) > 0 {
		kinds := make([]domain.NodeKind, 0, len(f.Kinds))
		for _, s := range f.Kinds {
			// Unrecognized kind strings pass through and match no rows.
			kinds = append(kinds, domain.NodeKind(s))
		}
		c.Kinds = kinds
		c.Applied = append(c.Applied, "kinds")
	}

	if len(f.ParentID) > 0 {
		// Explicit null selects top-level nodes; a uuid selects one
		// parent's children; an absent key applies no predicate at all.
		if bytes.Equal(bytes.TrimSpace(f.ParentID), []byte("null")) {
			c.TopLevelOnly = true
		} else {
			var s string
			if err := json.Unmarshal(f.ParentID, &s); err != nil {
				return domain.NewValidationError("filters.parentId", "must be a uuid string or null")
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return domain.NewValidationError("filters.parentId", "invalid uuid "+s)
			}
			c.ParentID = &id
		}
		c.Applied = append(c.Applied, "parentId")
	}

	if f.DateRange != nil {
		// Only updatedAt switches the column; any other field value keeps
		// the createdAt default.
		if domain.DateField(f.DateRange.Field) == domain.DateFieldUpdatedAt {
			c.DateField = domain.DateFieldUpdatedAt
		}
		if f.DateRange.From != nil {
			from, err := parseDate(*f.DateRange.From)
			if err != nil {
				return domain.NewValidationError("filters.dateRange.from", err.Error())
			}
			c.DateFrom = &from
		}
		if f.DateRange.To != nil {
			to, err := parseDate(*f.DateRange.To)
			if err != nil {
				return domain.NewValidationError("filters.dateRange.to", err.Error())
			}
			c.DateTo = &to
		}
		if c.DateFrom != nil || c.DateTo != nil {
			c.Applied = append(c.Applied, "dateRange")
		}
	}

	if f.Search != nil && *f.Search != "" {
		c.Search = f.Search
		c.Applied = append(c.Applied, "search")
	}

	if len(f.CustomFilters) > 0 {
		custom, err := compileCustomFilters(f.CustomFilters)
		if err != nil {
			return err
		}
		if len(custom) > 0 {
			c.Custom = custom
			c.Applied = append(c.Applied, "customFilters")
		}
	}

	if len(f.Tags) > 0 {
		c.TagNames = f.Tags
		c.Applied = append(c.Applied, "tags")
	}

	c.IncludeDeleted = f.IncludeDeleted
	return nil
}

// compileCustomFilters parses the customFilters map: content field name to
// either a scalar equality or a {gte,lte,eq} range object. Keys compile in
// sorted order so the same config always builds the same query.
func compileCustomFilters(raw json.RawMessage) ([]domain.CustomFilter, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, domain.NewValidationError(
			"filters.customFilters", "must be a map of content field to scalar or range")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.CustomFilter, 0, len(fields))
	for _, key := range keys {
		val := bytes.TrimSpace(fields[key])
		switch {
		case len(val) == 0 || bytes.Equal(val, []byte("null")):
			// A null value carries no usable bound; the key is skipped.
		case val[0] == '{':
			var rng rawCustomRange
			if err := json.Unmarshal(val, &rng); err != nil {
				return nil, domain.NewValidationError(
					"filters.customFilters."+key, "gte and lte must be numbers")
			}
			cf := domain.CustomFilter{Key: key, GTE: rng.GTE, LTE: rng.LTE}
			if len(rng.Eq) > 0 {
				eq, err := decodeScalar(rng.Eq)
				if err != nil {
					return nil, domain.NewValidationError(
						"filters.customFilters."+key+".eq", "must be a string, number or boolean")
				}
				cf.Eq = &eq
			}
			if cf.Eq == nil && cf.GTE == nil && cf.LTE == nil {
				// A range object with no recognized operator applies no bound.
				continue
			}
			out = append(out, cf)
		default:
			eq, err := decodeScalar(val)
			if err != nil {
				return nil, domain.NewValidationError(
					"filters.customFilters."+key, "must be a scalar or a gte/lte/eq range")
			}
			out = append(out, domain.CustomFilter{Key: key, Eq: &eq})
		}
	}
	return out, nil
}

// decodeScalar renders a JSON scalar as the text the content->>key accessor
// yields, so equality compares like for like.
func decodeScalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("not a scalar")
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want RFC3339 or YYYY-MM-DD", s)
}

// toNodeFilter converts the compiled config into the repository filter,
// substituting the resolved tag ids.
func (c *Config) toNodeFilter(tagIDs []uuid.UUID) domain.NodeFilter {
	return domain.NodeFilter{
		Kinds:          c.Kinds,
		ParentID:       c.ParentID,
		TopLevelOnly:   c.TopLevelOnly,
		DateField:      c.DateField,
		DateFrom:       c.DateFrom,
		DateTo:         c.DateTo,
		Search:         c.Search,
		Custom:         c.Custom,
		TagIDs:         tagIDs,
		IncludeDeleted: c.IncludeDeleted,
		SortBy:         c.SortBy,
		SortOrder:      c.SortOrder,
		Limit:          c.Limit,
	}
}
