// Package methods handles listing the registered payment strategies
package methods

import (
	"fmt"
	"io"

	"fjacquet/payment-strategy/cmd/root"
	"fjacquet/payment-strategy/internal/config"
	"fjacquet/payment-strategy/internal/logging"
	"fjacquet/payment-strategy/internal/payment"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var format string

// Row is one listed payment method.
type Row struct {
	Name  string `csv:"name" yaml:"name"`
	Label string `csv:"label" yaml:"label"`
}

// Cmd represents the methods command
var Cmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available payment strategies",
	Long:  `List the registered payment strategies in registry order as text, CSV or YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := format
		if f == "" {
			f = root.AppContainer.GetConfig().Payment.ListFormat
		}
		root.Log.Debug("Listing payment strategies", logging.F(logging.FieldFormat, f))
		return Write(cmd.OutOrStdout(), root.AppContainer.Methods(), f)
	},
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, csv or yaml (default: payment.list_format)")
}

// Rows converts methods to listing rows.
func Rows(methods []payment.Method) []*Row {
	rows := make([]*Row, 0, len(methods))
	for _, m := range methods {
		rows = append(rows, &Row{Name: m.Name(), Label: m.Label()})
	}
	return rows
}

// Write renders methods to out in the given format.
func Write(out io.Writer, methods []payment.Method, format string) error {
	if err := config.ValidateListFormat(format); err != nil {
		return err
	}

	rows := Rows(methods)
	switch format {
	case config.ListFormatCSV:
		if err := gocsv.Marshal(rows, out); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	case config.ListFormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
	default:
		for _, r := range rows {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", r.Name, r.Label); err != nil {
				return err
			}
		}
	}
	return nil
}
