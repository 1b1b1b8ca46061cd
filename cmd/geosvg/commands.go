package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"geosvg/internal/batch"
	"geosvg/internal/config"
	"geosvg/internal/raster"
	"geosvg/internal/svg"
	"geosvg/internal/tui"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *slog.Logger
	dec *svg.Decoder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "geosvg [file]",
		Short:         "Read and write SVG shapes as geometries",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		RunE: a.runView,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.toml or .yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	view := &cobra.Command{
		Use:   "view [file]",
		Short: "Open the terminal viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runView,
	}

	var from, to string
	convert := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a shape between svg, d, wkt and geojson",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, from, to)
		},
	}
	convert.Flags().StringVar(&from, "from", batch.Auto, "input format: auto, svg, d, wkt or geojson")
	convert.Flags().StringVar(&to, "to", "", "output format: svg, d, wkt or geojson (default from config)")

	var out string
	var width, height int
	render := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Rasterize a shape to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, out, width, height)
		},
	}
	render.Flags().StringVarP(&out, "out", "o", "shape.png", "PNG file to write")
	render.Flags().IntVar(&width, "width", 0, "image width (default from config)")
	render.Flags().IntVar(&height, "height", 0, "image height (default from config)")

	var opt batch.Options
	var batchOut string
	batchCmd := &cobra.Command{
		Use:   "batch in.csv",
		Short: "Add a converted shape column to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args[0], batchOut, opt)
		},
	}
	batchCmd.Flags().StringVar(&opt.Column, "column", "", "input column (default: first geometry-like header)")
	batchCmd.Flags().StringVar(&opt.From, "from", batch.Auto, "input format")
	batchCmd.Flags().StringVar(&opt.To, "to", "", "output format (default from config)")
	batchCmd.Flags().BoolVar(&opt.Lenient, "lenient", false, "leave failed rows empty instead of stopping")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "-", "CSV file to write")

	root.AddCommand(view, convert, render, batchCmd)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.dec = svg.NewDecoder(svg.WithFlattener(svg.FixedFlattener{Samples: cfg.Flatten.Samples}))
	a.log.Debug("config loaded", "path", a.configPath, "samples", cfg.Flatten.Samples, "format", cfg.Output.Format)
	return nil
}

func (a *app) runView(_ *cobra.Command, args []string) error {
	opts := tui.Options{Decoder: a.dec, Format: a.cfg.Output.Format}
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(args[0], opts)
	} else {
		m = tui.New(opts)
	}
	return runProgram(m)
}

// runProgram runs the viewer until it quits.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (a *app) runConvert(cmd *cobra.Command, args []string, from, to string) error {
	if to == "" {
		to = a.cfg.Output.Format
	}
	text, name, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	g, err := batch.Parse(text, from, a.dec)
	if err != nil {
		a.log.Error("parse failed", "input", name, "from", from, "err", err)
		return err
	}
	s, err := batch.Format(g, to)
	if err != nil {
		return err
	}
	a.log.Debug("converted", "input", name, "kind", g.Kind(), "to", to)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func (a *app) runRender(cmd *cobra.Command, args []string, out string, width, height int) error {
	text, name, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	g, err := batch.Parse(text, batch.Auto, a.dec)
	if err != nil {
		a.log.Error("parse failed", "input", name, "err", err)
		return err
	}
	opt := raster.DefaultOptions()
	opt.Width, opt.Height, opt.Stroke = a.cfg.Render.Width, a.cfg.Render.Height, a.cfg.Render.Stroke
	if width > 0 {
		opt.Width = width
	}
	if height > 0 {
		opt.Height = height
	}
	out, err = homedir.Expand(out)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := raster.WritePNG(f, g, opt); err != nil {
		f.Close()
		return err
	}
	a.log.Debug("rendered", "input", name, "out", out, "width", opt.Width, "height", opt.Height)
	return f.Close()
}

func (a *app) runBatch(cmd *cobra.Command, in, out string, opt batch.Options) error {
	if opt.To == "" {
		opt.To = a.cfg.Output.Format
	}
	opt.Decoder = a.dec
	in, err := homedir.Expand(in)
	if err != nil {
		return err
	}
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()

	w := cmd.OutOrStdout()
	var f *os.File
	if out != "-" {
		if out, err = homedir.Expand(out); err != nil {
			return err
		}
		if f, err = os.Create(out); err != nil {
			return err
		}
		w = f
	}
	st, err := batch.Convert(r, w, opt)
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		a.log.Error("batch failed", "input", in, "rows", st.Rows, "err", err)
		return err
	}
	if st.Failed > 0 {
		a.log.Warn("rows left empty", "input", in, "failed", st.Failed, "rows", st.Rows)
	}
	a.log.Info("batch converted", "input", in, "rows", st.Rows, "to", opt.To)
	return nil
}

// readInput reads the file named by args[0], or stdin when it is absent or "-".
func readInput(stdin io.Reader, args []string) (text, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), "stdin", err
	}
	path, err := homedir.Expand(args[0])
	if err != nil {
		return "", args[0], err
	}
	b, err := os.ReadFile(path)
	return string(b), path, err
}
