package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	domainerrors "achaperto/internal/domain/errors"
	"achaperto/internal/domain/search"
	"achaperto/internal/errors"
	logs "achaperto/internal/infra/log"
	"achaperto/internal/usecase"

	"github.com/spf13/cobra"
)

// Dependencies holds the injectable collaborators of the CLI.
type Dependencies struct {
	ConfigLoader    func() (*config.Config, error)
	ResolverFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (usecase.SearchUsecase, func(), error)

	// Stdout receives JSON results only; logs go to Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

type searchFlags struct {
	query    string
	coords   string
	address  string
	excluded []string
	verbose  bool
}

// categoryRow is one line of the categories output.
type categoryRow struct {
	Query        string `json:"query,omitempty"`
	Category     string `json:"category"`
	ProviderType string `json:"providerType,omitempty"`
	Keyword      string `json:"keyword,omitempty"`
}

// NewRootCmd builds the command tree.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:          "achaperto-cli",
		Short:        "Find the nearest open place from the command line",
		SilenceUsage: true,
	}

	root.AddCommand(newSearchCmd(deps), newCategoriesCmd(deps))

	return root
}

func newSearchCmd(deps *Dependencies) *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Resolve one request and print the result as JSON",
		Example: `  achaperto-cli search --query "farmácia" --coords "-15.7801,-47.9292"
  achaperto-cli search -q borracharia --address "Rua 10, Setor Oeste, Goiânia"
  achaperto-cli search -q mercado --coords "-15.78,-47.93" --exclude "Mercado Bom Preço"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd.Context(), deps, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "What the user is looking for")
	cmd.Flags().StringVar(&flags.coords, "coords", "", `Position as "lat,lng"`)
	cmd.Flags().StringVar(&flags.address, "address", "", "Manual address, takes precedence over --coords")
	cmd.Flags().StringArrayVar(&flags.excluded, "exclude", nil, "Name already shown to the user (repeatable)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level on stderr")
	_ = cmd.MarkFlagRequired("query")
	cmd.MarkFlagsOneRequired("coords", "address")

	return cmd
}

func runSearch(ctx context.Context, deps *Dependencies, flags *searchFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req := &entity.SearchRequest{
		Query:         strings.TrimSpace(flags.query),
		ManualAddress: strings.TrimSpace(flags.address),
		ExcludedNames: flags.excluded,
	}
	if !req.HasManualAddress() && flags.coords != "" {
		coord, err := entity.ParseCoordinate(flags.coords)
		if err != nil {
			return errors.Wrap(err, "invalid --coords")
		}
		req.Coordinates = &coord
	}

	cfg, err := deps.ConfigLoader()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if flags.verbose {
		cfg.Env.Log.Level = "debug"
	}

	logger, err := logs.NewWithWriter(cfg, stderrOf(deps))
	if err != nil {
		return err
	}

	resolver, cleanup, err := deps.ResolverFactory(ctx, cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to build resolver")
	}
	if cleanup != nil {
		defer cleanup()
	}

	result, err := resolver.Resolve(ctx, req)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Search failed", slog.Any("error", err))
			if writeErr := writeJSON(deps.Stdout, entity.NewInternalErrorResult()); writeErr != nil {
				return writeErr
			}
		}

		return err
	}

	return writeJSON(deps.Stdout, result)
}

func newCategoriesCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [query...]",
		Short: "Show how queries map onto categories; lists every category without arguments",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				rows := make([]categoryRow, 0, len(search.Categories()))
				for _, category := range search.Categories() {
					rows = append(rows, categoryRow{Category: category.String()})
				}

				return writeJSON(deps.Stdout, rows)
			}

			rows := make([]categoryRow, 0, len(args))
			for _, query := range args {
				category := search.MapCategory(query)
				rows = append(rows, categoryRow{
					Query:        query,
					Category:     category.String(),
					ProviderType: search.MapToProviderType(query),
					Keyword:      search.SearchKeyword(category, query),
				})
			}

			return writeJSON(deps.Stdout, rows)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	if w == nil {
		w = os.Stdout
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return errors.WithStack(enc.Encode(v))
}

func stderrOf(deps *Dependencies) io.Writer {
	if deps.Stderr != nil {
		return deps.Stderr
	}

	return os.Stderr
}
