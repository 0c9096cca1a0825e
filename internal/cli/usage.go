package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/vk/tcplika/internal/catalog"
)

const usageHeader = `
tcplika - opens and holds TCP connections against one or more endpoints.

Usage:
  tcplika [options] <host:port> [<host:port> ...]

Arguments:
  <host:port>
    IPv4 or bracketed IPv6 address and port, e.g. 10.0.0.1:9000 or [::1]:9000.
    Repeat to target several endpoints.

Options:
`

const usageFooter = `
Examples:
  tcplika -c 1000 -t 8 -n off 10.0.0.1:9000
  tcplika -profile run.hcl -ct 2000
`

// Usage renders the full help text.
func Usage() (string, error) {
	data := pterm.TableData{{"Option", "Value", "Description"}}
	for _, opt := range catalog.Options() {
		names := make([]string, len(opt.Names))
		for i, name := range opt.Names {
			names[i] = "-" + name
		}
		data = append(data, []string{strings.Join(names, ", "), opt.Value, opt.Usage})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render usage table: %w", err)
	}
	return usageHeader + table + "\n" + usageFooter, nil
}
