package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/m1kedigital/ascii"
	"github.com/m1kedigital/ascii/imageutil"
	"github.com/m1kedigital/ascii/internal/ui"
)

var flags struct {
	density     int
	fontSize    int
	boldness    float64
	invert      bool
	colored     bool
	background  string
	charset     string
	output      string
	textFile    string
	toStdout    bool
	toClipboard bool
	interactive bool
}

var rootCmd = &cobra.Command{
	Use:   "ascii [flags] IMAGE",
	Short: "Render an image as a grid of characters",
	Long: "ascii converts a raster image into a grid of printable characters\n" +
		"whose local brightness approximates the source, and writes the result\n" +
		"both as a styled glyph bitmap (PNG) and as a plain-text transcript.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imageutil.LoadImage(args[0])
		if err != nil {
			return err
		}

		settings := ascii.Settings{
			Density:    flags.density,
			FontSize:   flags.fontSize,
			Boldness:   flags.boldness,
			Invert:     flags.invert,
			Colored:    flags.colored,
			Background: ascii.ParseBackground(flags.background),
			Charset:    flags.charset,
		}

		if flags.interactive {
			return ui.Start(&ui.Option{
				Image:      img,
				Settings:   settings,
				OutputPath: flags.output,
			})
		}

		out, err := ascii.NewRenderer(ascii.WithSettings(settings)).Render(img)
		if err != nil {
			return err
		}

		if flags.output != "" {
			if err := imageutil.SavePNG(out.Bitmap, flags.output); err != nil {
				return err
			}
		}
		if flags.textFile != "" {
			if err := os.WriteFile(flags.textFile, []byte(out.Text()+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write transcript: %w", err)
			}
		}
		if flags.toClipboard {
			if err := clipboard.WriteAll(out.Text()); err != nil {
				return fmt.Errorf("failed to copy transcript: %w", err)
			}
		}
		if flags.toStdout {
			fmt.Fprintln(cmd.OutOrStdout(), out.Text())
		}
		return nil
	},
}

func init() {
	defaults := ascii.DefaultSettings()

	rootCmd.Flags().IntVarP(&flags.density, "density", "d", defaults.Density,
		fmt.Sprintf("approximate column count [%d,%d]", ascii.MinDensity, ascii.MaxDensity))
	rootCmd.Flags().IntVar(&flags.fontSize, "font-size", defaults.FontSize,
		fmt.Sprintf("glyph pixel height [%d,%d]", ascii.MinFontSize, ascii.MaxFontSize))
	rootCmd.Flags().Float64Var(&flags.boldness, "boldness", defaults.Boldness,
		"font weight in [0,1] (0 = weight 300, 1 = weight 900)")
	rootCmd.Flags().BoolVar(&flags.invert, "invert", false,
		"flip the brightness-to-character direction")
	rootCmd.Flags().BoolVarP(&flags.colored, "colored", "c", false,
		"draw each glyph in its source pixel color")
	rootCmd.Flags().StringVar(&flags.background, "background", defaults.Background.String(),
		"background mode: dark, light or none")
	rootCmd.Flags().StringVar(&flags.charset, "charset", "",
		"custom brightness ramp, lightest to densest (empty = built-in)")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "ascii.png",
		"path for the rendered PNG (empty to skip)")
	rootCmd.Flags().StringVar(&flags.textFile, "text", "",
		"write the transcript to this file")
	rootCmd.Flags().BoolVar(&flags.toStdout, "stdout", false,
		"print the transcript to stdout")
	rootCmd.Flags().BoolVar(&flags.toClipboard, "copy", false,
		"copy the transcript to the system clipboard")
	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false,
		"adjust parameters interactively in the terminal")
}
