package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/logging"
	"github.com/rshade/pagekit/internal/paginator"
)

// flagState names the flag that loads pagination state from a JSON or YAML document.
const flagState = "state"

// ErrInvalidState is returned when a --state document cannot be read or holds
// values the paginator rejects.
var ErrInvalidState = errors.New("invalid pagination state")

// newPaginationParams returns pagination params seeded with the configured defaults.
func newPaginationParams() *pagination.PaginationParams {
	return pagination.NewPaginationParams(config.GetDefaultLimit(), config.GetDefaultButtonsMax())
}

// addStateFlag registers --state, bound to target.
func addStateFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, flagState, "",
		"JSON or YAML file (or - for stdin) with start, limit and total; explicit flags win")
}

// buildPaginator turns the pagination flags into a paginator. Flags the user did
// not set take the current configured defaults, so a --config overlay applied in
// PersistentPreRunE is honored. When statePath is set its values are applied next,
// then any pagination flags given explicitly. The paginator logs through the
// command's logger.
func buildPaginator(
	cmd *cobra.Command,
	params *pagination.PaginationParams,
	statePath string,
) (*paginator.Paginator, error) {
	if !cmd.Flags().Changed(pagination.FlagLimit) {
		params.Limit = config.GetDefaultLimit()
	}
	if !cmd.Flags().Changed(pagination.FlagButtonsMax) {
		params.ButtonsMax = config.GetDefaultButtonsMax()
	}

	log := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "paginator")
	pg, err := params.NewPaginator(paginator.WithLogger(log))
	if err != nil {
		return nil, err
	}

	if statePath != "" {
		if err = applyState(cmd, pg, statePath); err != nil {
			return nil, err
		}
		applyChangedFlags(cmd, params, pg)
	}

	log.Debug().Ctx(cmd.Context()).Stringer("state", pg).Msg("paginator configured")
	return pg, nil
}

// applyState decodes the document at path into a loosely typed map and hands it
// to ConfigureValues, so "40", 40 and 40.0 are all accepted.
func applyState(cmd *cobra.Command, pg *paginator.Paginator, path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrInvalidState, path, err)
	}

	var values map[string]any
	if err = yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrInvalidState, path, err)
	}
	if err = pg.ConfigureValues(values); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidState, path, err)
	}
	return nil
}

// applyChangedFlags re-applies the pagination flags the user set explicitly.
func applyChangedFlags(cmd *cobra.Command, params *pagination.PaginationParams, pg *paginator.Paginator) {
	var opts paginator.Options
	if cmd.Flags().Changed(pagination.FlagStart) {
		opts.Start = paginator.Int(params.Start)
	}
	if cmd.Flags().Changed(pagination.FlagLimit) {
		opts.Limit = paginator.Int(params.Limit)
	}
	if cmd.Flags().Changed(pagination.FlagTotal) {
		opts.Total = paginator.Int(params.Total)
	}
	pg.Configure(opts)

	if params.IsPageBased() {
		pg.Configure(paginator.Options{Start: paginator.Int(pg.ForPage(params.Page))})
	}
}
