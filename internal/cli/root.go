package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/leiserfg/rmk-piantor/pkg/buildinfo"
	"github.com/leiserfg/rmk-piantor/pkg/errors"
)

// Execute runs the kbsvg CLI and returns an error if the conversion
// fails. The root command is the converter itself; there is no
// subcommand tree for a one-shot tool.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the context and retrieved by the
// run function via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := newGenerateOpts()

	root := &cobra.Command{
		Use:   "kbsvg [keyboard.toml] [vial.json] [output]",
		Short: "Render a keyboard layout description as an SVG diagram",
		Long: `kbsvg reads a keyboard layout description (keyboard.toml) and the Vial
metadata file (vial.json) and renders every layer of the keymap as a
color-coded SVG diagram with combo overlays and a legend.`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyArgs(args)
			if err := opts.validate(); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, json")
	root.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor (png only)")

	err := root.ExecuteContext(ctx)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		fmt.Fprintf(os.Stderr, "usage: %s\n", root.Use)
	}
	return err
}
