// Package catalog loads the partner registry and noise rules from a YAML file.
package catalog

import (
	"log/slog"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/search"
	"achaperto/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// document is the on-disk layout of the catalog file.
type document struct {
	Partners []entity.PartnerEntry `json:"partners" yaml:"partners" validate:"dive"`
	Noise    []search.NoiseRule    `json:"noise" yaml:"noise" validate:"dive"`
}

// Load reads and validates the catalog at path.
func Load(path string) (*search.Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	var doc document
	if err := config.Unmarshal(k, "", &doc); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", path)
	}

	if err := validate(doc); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", path)
	}

	return search.NewCatalog(doc.Partners, doc.Noise), nil
}

func validate(doc document) error {
	if err := validator.New().Struct(doc); err != nil {
		return errors.WithStack(err)
	}

	for i, rule := range doc.Noise {
		if !rule.Category.IsKnown() {
			return errors.Errorf("noise[%d]: unknown category %q", i, rule.Category)
		}
	}

	for i, partner := range doc.Partners {
		if !search.Category(partner.Category).IsKnown() {
			return errors.Errorf("partners[%d] %q: unknown category %q", i, partner.Name, partner.Category)
		}
	}

	return nil
}

// Params holds dependencies for the catalog provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the catalog configured at search.catalogPath.
func New(params Params) (*search.Catalog, error) {
	catalog, err := Load(params.Config.Search.CatalogPath)
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("path", params.Config.Search.CatalogPath),
		slog.Int("partners", catalog.Registry.Len()),
	}
	if fp, err := util.FileFingerprint(params.Config.Search.CatalogPath); err == nil {
		attrs = append(attrs, slog.String("sha256", fp.Short()))
	}
	params.Logger.Info("Search catalog loaded", attrs...)

	return catalog, nil
}

// Module provides the search catalog
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
