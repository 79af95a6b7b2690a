package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	defaultIndent = 2
)

// outputFormat returns the --output value, or json when it is unset and out
// is not a terminal.
func outputFormat(out io.Writer) (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	case "":
		if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return OutputFormatTable, nil
		}

		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

func renderJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", defaultIndent))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

func renderYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// render writes data as json or yaml, or calls table for table output.
func render(cmd *cobra.Command, data interface{}, table func(out io.Writer) error) error {
	out := cmd.OutOrStdout()

	format, err := outputFormat(out)
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		return renderJSON(out, data)
	case OutputFormatYAML:
		return renderYAML(out, data)
	default:
		return table(out)
	}
}

func renderTable(out io.Writer, header []string, rows [][]string) error {
	cells := make([]interface{}, 0, len(header))
	for _, cell := range header {
		cells = append(cells, cell)
	}

	table := tablewriter.NewWriter(out)
	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderResourceDetails prints every attribute of res as a property table.
func renderResourceDetails(cmd *cobra.Command, res *resource.Resource) error {
	attributes := res.Attributes()

	return render(cmd, attributes, func(out io.Writer) error {
		keys := make([]string, 0, len(attributes))
		for key := range attributes {
			if strings.HasPrefix(key, resource.InternalPrefix) {
				continue
			}

			keys = append(keys, key)
		}

		sort.Strings(keys)

		rows := make([][]string, 0, len(keys)+1)
		for _, key := range keys {
			rows = append(rows, []string{key, formatValue(attributes[key])})
		}

		if humanID := res.HumanID(); humanID != "" {
			rows = append(rows, []string{resource.AttrHumanID, humanID})
		}

		return renderTable(out, []string{"Property", "Value"}, rows)
	})
}

// renderResourceList prints one row per resource with the given columns. Only
// attributes already in the bag are shown.
func renderResourceList(cmd *cobra.Command, resources []*resource.Resource, columns []string) error {
	data := make([]map[string]interface{}, 0, len(resources))
	for _, res := range resources {
		data = append(data, res.Attributes())
	}

	return render(cmd, data, func(out io.Writer) error {
		header := make([]string, 0, len(columns))
		for _, column := range columns {
			header = append(header, strings.ToUpper(strings.ReplaceAll(column, "_", " ")))
		}

		rows := make([][]string, 0, len(resources))

		for _, attributes := range data {
			row := make([]string, 0, len(columns))
			for _, column := range columns {
				row = append(row, formatValue(attributes[column]))
			}

			rows = append(rows, row)
		}

		return renderTable(out, header, rows)
	})
}

func formatValue(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(data)
	default:
		return fmt.Sprint(typed)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
