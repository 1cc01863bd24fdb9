package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tips/internal/errors"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		page   bool
		pretty bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the tips fragment to stdout or a file",
		Long: `Render the tips fragment once and print it.

Examples:
  tips render
  tips render --page --pretty
  tips render -o fragment.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if pretty {
				cfg.Render.Pretty = true
			}

			s, err := buildSite(cfg)
			if err != nil {
				return err
			}

			body := s.Fragment()
			if page {
				body = s.Page()
			} else if len(body) > 0 && body[len(body)-1] != '\n' {
				body = append(append([]byte(nil), body...), '\n')
			}

			if output != "" {
				if err := os.WriteFile(output, body, 0644); err != nil {
					return errors.New("E131").WithDetail(output).Wrap(err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "Render the standalone page instead of the fragment")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print HTML")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
