package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tips/app/components/tips"
	"github.com/vango-dev/tips/internal/errors"
	"github.com/vango-dev/tips/pkg/styles"
)

func stylesCmd(flags *globalFlags) *cobra.Command {
	var (
		css   bool
		write string
		check string
	)

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print, save or verify the generated class map",
		Long: `Print the logical to generated class map of the tips stylesheet.

Use --write to save the map for hosts that style the fragment, and
--check in CI to fail when a saved map no longer matches the stylesheet.

Examples:
  tips styles
  tips styles --css
  tips styles --write styles.json
  tips styles --check styles.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if css && (write != "" || check != "") {
				return errors.New("E140").WithDetail("--css cannot be combined with --write or --check")
			}
			return runStyles(cmd, tips.Styles, css, write, check)
		},
	}

	cmd.Flags().BoolVar(&css, "css", false, "Print the compiled stylesheet instead of the class map")
	cmd.Flags().StringVar(&write, "write", "", "Write the class map to this file")
	cmd.Flags().StringVar(&check, "check", "", "Verify a saved class map matches the stylesheet")

	return cmd
}

func runStyles(cmd *cobra.Command, mod *styles.Module, css bool, write, check string) error {
	out := cmd.OutOrStdout()

	switch {
	case css:
		fmt.Fprint(out, mod.CSS())
		if !strings.HasSuffix(mod.CSS(), "\n") {
			fmt.Fprintln(out)
		}
		return nil

	case check != "":
		saved, err := styles.LoadMap(check)
		if err != nil {
			return err
		}
		if diff := mod.Diff(saved); len(diff) > 0 {
			return errors.New("E113").
				WithDetailf("%s differs for: %s", check, strings.Join(diff, ", ")).
				WithSuggestion("Run 'tips styles --write " + check + "' and commit the result")
		}
		fmt.Fprintf(out, "%s is up to date (%d classes)\n", check, mod.Len())
		return nil

	case write != "":
		if err := mod.SaveMap(write); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%d classes)\n", write, mod.Len())
		return nil
	}

	data, err := json.MarshalIndent(mod, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
