package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/kdraman/dotgrid/internal/braille"
	"github.com/kdraman/dotgrid/internal/config"
	"github.com/kdraman/dotgrid/internal/scene"
	"github.com/kdraman/dotgrid/internal/viz"
	"github.com/spf13/cobra"
)

var (
	width      int
	height     int
	fps        int
	speed      int
	theme      string
	preset     string
	configFile string
	// plot options
	plotWidth  int
	plotHeight int
	caption    string
	useBraille bool
)

// main registers the dotgrid commands; with no subcommand it launches the
// live player on the default scene.
func main() {
	rootCmd := &cobra.Command{
		Use:   "dotgrid",
		Short: "braille terminal graphics playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	demoCmd := &cobra.Command{
		Use:   "demo [figure]",
		Short: "render a figure or scene to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	demoCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	demoCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "animate a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	liveCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "turtle steps per frame")
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "chrome theme")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "chart a numeric series (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "chart width in cells")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "chart height in cells")
	plotCmd.Flags().StringVar(&caption, "caption", "", "chart caption")
	plotCmd.Flags().BoolVar(&useBraille, "braille", false, "render with braille dots instead of asciigraph")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes",
		RunE:  listScenes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(demoCmd, liveCmd, plotCmd, scenesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "triangle":
		fmt.Println(demoTriangle())
		return nil
	case "rgb":
		fmt.Println(demoRGBTriangles())
		return nil
	case "shapes":
		fmt.Println(demoShapes())
		return nil
	}
	sc, err := scene.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Println(sc.Render(width, height))
	return nil
}

func demoTriangle() string {
	c := braille.New(100, 100)
	c.Line(2, 2, 80, 80)
	c.Line(2, 80, 80, 80)
	c.Line(2, 2, 2, 80)
	return c.Frame()
}

func demoRGBTriangles() string {
	c := braille.New(100, 100)
	c.LineColored(2, 2, 80, 80, braille.Red)
	c.LineColored(2, 80, 80, 80, braille.Green)
	c.LineColored(2, 2, 2, 80, braille.Blue)
	c.LineColored(7, 17, 85, 95, braille.RGB(255, 0, 0))
	c.LineColored(7, 95, 85, 95, braille.RGB(0, 255, 0))
	c.LineColored(7, 17, 7, 95, braille.RGB(0, 0, 255))
	return c.Frame()
}

func demoShapes() string {
	c := braille.New(120, 96)
	c.Rectangle(4, 4, 114, 88)
	c.EllipseBox(10, 10, 108, 82)
	c.EllipseCenter(59, 46, 22, 12)
	c.Text(46, 46, 26, "dotgrid")
	return c.Frame()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if len(args) == 1 {
		cfg.Scene = args[0]
	}
	if preset != "" {
		p := config.GetPreset(cfg.Scene, preset)
		if p == nil {
			return fmt.Errorf("unknown preset %q for scene %q", preset, cfg.Scene)
		}
		cfg = p
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}

	sc, err := scene.Lookup(cfg.Scene)
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	return viz.Run(sc, cfg)
}

func runPlot(cmd *cobra.Command, args []string) error {
	values, err := readSeries(args[0])
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no values in %s", args[0])
	}

	if useBraille {
		if caption != "" {
			fmt.Println(caption)
		}
		fmt.Println(viz.PlotSeries(values, plotWidth*2, plotHeight*4))
		return nil
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	))
	return nil
}

// readSeries parses whitespace or comma separated floats from a file, or
// stdin when path is "-".
func readSeries(path string) ([]float64, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var values []float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.FieldsFunc(sc.Text(), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("bad value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	return values, sc.Err()
}

func listScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTEPS\tDESCRIPTION")
	for _, name := range scene.Names() {
		sc, err := scene.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", sc.Name, sc.Steps, sc.Desc)
	}
	return w.Flush()
}
