// Command litparse parses a single literal value given as arguments or on
// stdin and prints the resulting value tree, for poking at the grammar from
// a shell.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhump/litparse"
	"github.com/jhump/litparse/ast"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "litparse:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		decimalMode bool
		format      string
	)
	cmd := &cobra.Command{
		Use:   "litparse [literal]",
		Short: "Parse a literal value and print the result",
		Long: `Parse a single literal value and print the resulting value tree.

The literal is taken from the arguments (joined with spaces) or, with no
arguments, read from stdin. Trailing data after the literal is an error.`,
		Example: `  litparse '[1, 2.5, :three]'
  litparse --decimal 12.37
  echo '{ "a" => 0x1f }' | litparse --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimRight(string(data), "\n")
			}
			p := litparse.Parser{DecimalMode: decimalMode}
			v, err := p.Parse(text)
			if err != nil {
				return err
			}
			out, err := render(ast.ToNative(v), format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&decimalMode, "decimal", false, "parse plain fractional numbers as arbitrary-precision decimals")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format, yaml or json")
	return cmd
}

func render(native any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(native)
	case "json":
		out, err := json.MarshalIndent(native, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
