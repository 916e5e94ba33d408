package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"brand-yml/internal/brand"
	"brand-yml/internal/diagnostic"
	"brand-yml/internal/render"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a brand file and report diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}

			d := brand.Check(b)
			logDiagnostics(d)

			if err := d.Error(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d warnings, %d notes)\n",
				b.Path, len(d.Warnings), len(d.Infos))

			return nil
		},
	}
}

// logDiagnostics logs every diagnostic at the level matching its severity.
func logDiagnostics(d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		switch diag.Severity {
		case diagnostic.DiagnosticError:
			log.Error(diag.String())
		case diagnostic.DiagnosticWarning:
			log.Warn(diag.String())
		default:
			log.Info(diag.String())
		}
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved brand document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}

			data, err := brand.Marshal(b)
			if err != nil {
				return fmt.Errorf("failed to marshal brand: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

func newFontsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "Print web-font import URLs and font file faces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}

			if b.Typography == nil {
				return nil
			}

			out := cmd.OutOrStdout()

			for _, f := range b.Typography.Fonts {
				switch {
				case f.Hosted != nil:
					url, err := f.Hosted.ImportURL()
					if err != nil {
						return fmt.Errorf("font %q: %w", f.Hosted.Family, err)
					}

					fmt.Fprintf(out, "%s\t%s\t%s\n", f.Kind, f.Hosted.Family, url)

				case f.File != nil:
					format, err := f.File.Format()
					if err != nil {
						log.Warn("Font file is not loadable by browsers", "family", f.File.Family, "error", err)
						format = "-"
					}

					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", f.Kind, f.File.Family, f.File.Source, format)
				}
			}

			return nil
		},
	}
}

func newCSSCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Render a stylesheet of brand custom properties and font rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}

			opts := render.DefaultOptions()
			if prefix := a.v.GetString(keyPrefix); prefix != "" {
				opts.Prefix = prefix
			}

			files, err := render.Files(b, opts)
			if err != nil {
				return err
			}

			outputDir := a.v.GetString(keyOutput)
			if outputDir == "" || outputDir == "-" {
				for _, f := range files {
					if _, err := cmd.OutOrStdout().Write(f.Content); err != nil {
						return err
					}
				}

				return nil
			}

			err = render.WriteFiles(files, outputDir)
			if err != nil {
				return err
			}

			log.Info("Wrote stylesheet", "dir", outputDir, "files", len(files))

			return nil
		},
	}

	cmd.Flags().StringP(keyOutput, "o", "", "Output directory; the stylesheet is printed when empty or -")
	cmd.Flags().String(keyPrefix, render.DefaultOptions().Prefix, "Custom property prefix")

	_ = a.v.BindPFlag(keyOutput, cmd.Flags().Lookup(keyOutput))
	_ = a.v.BindPFlag(keyPrefix, cmd.Flags().Lookup(keyPrefix))

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Preview brand colors and typography in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Show(b))

			return err
		},
	}
}
