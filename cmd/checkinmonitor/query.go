package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"checkinmonitor/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the request descriptor and cache key for monitor views.",
}

var queryListCmd = &cobra.Command{
	Use:   "list <org> [filters]",
	Short: "Descriptor for a monitor list; filters use URL query syntax.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseFilters(args[1:])
		if err != nil {
			return err
		}
		return printDescriptor(cmd, query.ListKey(args[0], query.FiltersFromValues(values)))
	},
}

var queryDetailCmd = &cobra.Command{
	Use:   "detail <org> <project> <monitor> [query]",
	Short: "Descriptor for a single monitor; the optional query uses URL query syntax.",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseFilters(args[3:])
		if err != nil {
			return err
		}
		return printDescriptor(cmd, query.DetailKey(args[0], args[1], args[2], query.QueryFromValues(values)))
	},
}

func init() {
	queryCmd.AddCommand(queryListCmd, queryDetailCmd)
}

func parseFilters(args []string) (url.Values, error) {
	if len(args) == 0 {
		return url.Values{}, nil
	}
	values, err := url.ParseQuery(args[0])
	if err != nil {
		return nil, fmt.Errorf("filters %q: %w", args[0], err)
	}
	return values, nil
}

func printDescriptor(cmd *cobra.Command, d query.Descriptor) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path:   %s\n", d.Path)
	if encoded := d.Params.Values().Encode(); encoded != "" {
		fmt.Fprintf(out, "url:    %s?%s\n", d.Path, encoded)
	}
	_, err := fmt.Fprintf(out, "key:    %s\n", d.Key())
	return err
}
