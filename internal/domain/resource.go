package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ResourceKind string

const (
	ResourceProducts          ResourceKind = "products"
	ResourceCategories        ResourceKind = "categories"
	ResourceAdditionalOptions ResourceKind = "additional-options"
	ResourceRequiredOptions   ResourceKind = "required-options"
	ResourcePromotions        ResourceKind = "promotions"
	ResourceReels             ResourceKind = "reels"
	ResourceGames             ResourceKind = "games"
)

// Resource describes one managed collection and its create form.
type Resource struct {
	Kind           ResourceKind
	Path           string
	Headers        []string
	Schema         Schema
	CategoryFilter bool
}

// PageKey is the page-store key for the resource's listing screen.
func (r Resource) PageKey() string {
	return "page:" + string(r.Kind)
}

var resources = []Resource{
	{
		Kind:    ResourceProducts,
		Path:    "/api/products",
		Headers: []string{"id", "name", "category", "price", "available"},
		Schema: Schema{
			Fields: []Field{
				{Name: "name", Required: true, MaxLen: 120},
				{Name: "description", MaxLen: 2000},
				{Name: "price", Required: true, Type: FieldDecimal},
				{Name: "categoryId", Required: true, Type: FieldInteger},
				{Name: "available", Type: FieldBool},
			},
			ImageField: "image",
		},
		CategoryFilter: true,
	},
	{
		Kind:    ResourceCategories,
		Path:    "/api/categories",
		Headers: []string{"id", "name"},
		Schema: Schema{
			Fields:     []Field{{Name: "name", Required: true, MaxLen: 80}},
			ImageField: "image",
		},
	},
	{
		Kind:    ResourceAdditionalOptions,
		Path:    "/api/additional-options",
		Headers: []string{"id", "name", "price"},
		Schema:  optionSchema,
	},
	{
		Kind:    ResourceRequiredOptions,
		Path:    "/api/required-options",
		Headers: []string{"id", "name", "price"},
		Schema:  optionSchema,
	},
	{
		Kind:    ResourcePromotions,
		Path:    "/api/promotions",
		Headers: []string{"id", "title", "discount"},
		Schema: Schema{
			Fields: []Field{
				{Name: "title", Required: true, MaxLen: 120},
				{Name: "description", MaxLen: 2000},
				{Name: "discountPercent", Required: true, Type: FieldDecimal},
			},
			ImageField: "image",
		},
	},
	{
		Kind:    ResourceReels,
		Path:    "/api/reels",
		Headers: []string{"id", "title", "video"},
		Schema: Schema{
			Fields: []Field{
				{Name: "title", Required: true, MaxLen: 120},
				{Name: "videoUrl", Required: true, MaxLen: 500},
				{Name: "productId", Type: FieldInteger},
			},
		},
	},
	{
		Kind:    ResourceGames,
		Path:    "/api/games",
		Headers: []string{"id", "name", "reward", "points"},
		Schema: Schema{
			Fields: []Field{
				{Name: "name", Required: true, MaxLen: 80},
				{Name: "reward", Required: true, MaxLen: 200},
				{Name: "points", Required: true, Type: FieldInteger},
			},
		},
	},
}

var optionSchema = Schema{
	Fields: []Field{
		{Name: "name", Required: true, MaxLen: 80},
		{Name: "price", Required: true, Type: FieldDecimal},
	},
}

// Resources lists every managed collection in menu order.
func Resources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}

func ResourceByKind(kind ResourceKind) (Resource, bool) {
	for _, r := range resources {
		if r.Kind == kind {
			return r, true
		}
	}
	return Resource{}, false
}

// OptionKindOf maps an options resource to the kind of option it lists.
func OptionKindOf(kind ResourceKind) (OptionKind, error) {
	switch kind {
	case ResourceAdditionalOptions:
		return OptionAdditional, nil
	case ResourceRequiredOptions:
		return OptionRequired, nil
	default:
		return "", ErrInvalidKind
	}
}

type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldDecimal
	FieldBool
)

type Field struct {
	Name     string
	Type     FieldType
	Required bool
	MaxLen   int
}

// Schema is the create form of a resource.
type Schema struct {
	Fields     []Field
	ImageField string
}

// Draft holds raw form input keyed by field name.
type Draft map[string]string

// Build validates the draft and converts it into a request payload.
// The image path, if the schema has one, is returned separately.
func (s Schema) Build(d Draft) (map[string]any, string, error) {
	known := make(map[string]Field, len(s.Fields))
	for _, f := range s.Fields {
		known[f.Name] = f
	}
	for name := range d {
		if _, ok := known[name]; !ok && name != s.ImageField {
			return nil, "", &FieldError{Field: name, Err: ErrUnknownField}
		}
	}

	payload := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw := strings.TrimSpace(d[f.Name])
		if raw == "" {
			if f.Required {
				return nil, "", &FieldError{Field: f.Name, Err: ErrRequiredField}
			}
			continue
		}
		if f.MaxLen > 0 && len(raw) > f.MaxLen {
			return nil, "", &FieldError{Field: f.Name, Err: ErrFieldTooLong}
		}

		switch f.Type {
		case FieldInteger:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, "", &FieldError{Field: f.Name, Err: ErrNotANumber}
			}
			payload[f.Name] = v
		case FieldDecimal:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, "", &FieldError{Field: f.Name, Err: ErrNotANumber}
			}
			payload[f.Name] = v
		case FieldBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, "", &FieldError{Field: f.Name, Err: ErrNotABool}
			}
			payload[f.Name] = v
		default:
			payload[f.Name] = raw
		}
	}

	var image string
	if s.ImageField != "" {
		image = strings.TrimSpace(d[s.ImageField])
	}
	return payload, image, nil
}

// DraftOf fills a draft from an existing item, matching schema fields to the
// item's JSON names. Fields the item leaves out stay empty.
func (s Schema) DraftOf(item any) (Draft, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}

	d := make(Draft, len(s.Fields))
	for _, f := range s.Fields {
		switch v := values[f.Name].(type) {
		case nil:
		case string:
			d[f.Name] = v
		case json.Number:
			d[f.Name] = v.String()
		case bool:
			d[f.Name] = strconv.FormatBool(v)
		default:
			d[f.Name] = fmt.Sprint(v)
		}
	}
	return d, nil
}
