package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/config"
)

// Output formats accepted by --output.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
	outputFormatYAML  = "yaml"

	tabPadding = 2
	yamlIndent = 2
)

// ErrUnsupportedOutput is returned for an --output value outside table, json and yaml.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// addOutputFlag registers --output with the configured default format.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "output", config.GetDefaultOutputFormat(),
		"Output format: table, json, or yaml")
}

// resolveOutputFormat returns the --output value, falling back to the current
// configured default when the flag was not set, and validates it.
func resolveOutputFormat(cmd *cobra.Command, flagValue string) (string, error) {
	format := flagValue
	if !cmd.Flags().Changed("output") {
		format = config.GetDefaultOutputFormat()
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !slices.Contains(config.OutputFormats, format) {
		return "", fmt.Errorf("%w: %q (use table, json, or yaml)", ErrUnsupportedOutput, format)
	}
	return format, nil
}

// renderStructured writes v as indented JSON or YAML.
func renderStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}

// renderMeta renders page metadata in the requested format.
func renderMeta(w io.Writer, format string, meta pagination.PaginationMeta) error {
	if format != outputFormatTable {
		return renderStructured(w, format, meta)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Page\t%d of %d\n", meta.CurrentPage, meta.PageCount)
	fmt.Fprintf(tw, "Range\t%d-%d of %d\n", meta.Range.Start, meta.Range.End, meta.Range.Total)
	fmt.Fprintf(tw, "Start\t%d\n", meta.Start)
	fmt.Fprintf(tw, "Limit\t%d\n", meta.PageSize)
	fmt.Fprintf(tw, "First page\t%s\n", yesNo(meta.IsFirst))
	fmt.Fprintf(tw, "Last page\t%s\n", yesNo(meta.IsLast))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Offset\tStart")
	fmt.Fprintln(tw, "------\t-----")
	fmt.Fprintf(tw, "first\t%d\n", meta.Offsets.First)
	fmt.Fprintf(tw, "previous\t%d\n", meta.Offsets.Previous)
	fmt.Fprintf(tw, "next\t%d\n", meta.Offsets.Next)
	fmt.Fprintf(tw, "last\t%d\n", meta.Offsets.Last)
	fmt.Fprintf(tw, "limit-change\t%d\n", meta.Offsets.LimitChange)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Buttons\t%s\n", formatButtons(meta.Buttons, meta.CurrentPage))
	return tw.Flush()
}

// formatButtons renders a button window with the current page in brackets,
// e.g. "1 2 [3] 4 5".
func formatButtons(buttons []int, current int) string {
	if len(buttons) == 0 {
		return "(none)"
	}
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = strconv.Itoa(b)
		if b == current {
			parts[i] = "[" + parts[i] + "]"
		}
	}
	return strings.Join(parts, " ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
