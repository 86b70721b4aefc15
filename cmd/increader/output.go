package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Set implements pflag.Value.
func (o *OutputFormat) Set(v string) error {
	switch OutputFormat(v) {
	case OutputText, OutputJSON, OutputYAML:
		*o = OutputFormat(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q, %q or %q", v, OutputText, OutputJSON, OutputYAML)
	}
	return nil
}

// String implements pflag.Value.
func (o *OutputFormat) String() string {
	if o == nil {
		return ""
	}
	return string(*o)
}

// Type implements pflag.Value.
func (o *OutputFormat) Type() string {
	return "OutputFormat"
}

var (
	_ pflag.Value = (*OutputFormat)(nil)
)

func addOutputFlag(cmd *cobra.Command, format *OutputFormat) {
	*format = OutputText
	cmd.Flags().VarP(format, "output", "o", "Output format. Options: text, json, yaml")
}

// writeOutput encodes v for json and yaml, and calls text otherwise.
func writeOutput(w io.Writer, format OutputFormat, v any, text func(w io.Writer) error) error {
	switch format {
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("json.Encode() > %w", err)
		}
		return nil
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("yaml.Encode() > %w", err)
		}
		return encoder.Close()
	default:
		return text(w)
	}
}
