package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ornament"
	"github.com/gogpu/ornament/config"
	"github.com/gogpu/ornament/integration/ebitenview"
	"github.com/gogpu/ornament/recording"

	// Register output backends.
	_ "github.com/gogpu/ornament/recording/backends/raster"
	_ "github.com/gogpu/ornament/recording/backends/svg"
	_ "github.com/gogpu/ornament/recording/backends/vector"
)

// windowBackend opens an on-screen window instead of writing a file.
const windowBackend = "window"

// defaultBackend is used when neither --backend nor --output names one.
const defaultBackend = "svg"

// windowTitle matches the title of the classic turtle screen.
const windowTitle = "Shapes"

// showWindow is replaced in tests.
var showWindow = ebitenview.Run

type renderFlags struct {
	configFile string
	backend    string
	output     string
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "ornament",
		Short: "Nested circumscribed polygon line art.",
		Long: `Draws layered ornaments of regular and star polygons, each nested
exactly inside the circle of the previous one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			ornament.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd(), newBackendsCmd(), newVersionCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured ornament",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "TOML configuration file (default: built-in ornament)")
	cmd.Flags().StringVarP(&f.backend, "backend", "b", "", "output backend: svg, raster, vector or window (default: from the --output extension, else svg)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", `output file, "-" for stdout (default: ornament plus the backend's extension)`)
	return cmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available output backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range recording.Backends() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), windowBackend)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ornament v%s\n", ornament.Version)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runRender(stdout io.Writer, f renderFlags) error {
	name, err := backendName(f)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f.configFile)
	if err != nil {
		return err
	}
	shapes, err := cfg.Build()
	if err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	log := ornament.Logger()
	rec := recording.NewRecorder(cfg.Canvas.Width, cfg.Canvas.Height)
	err = ornament.Render(rec, shapes, ornament.WithElapsedHook(func(d time.Duration) {
		log.Info("ornament drawn", "shapes", len(shapes), "elapsed", d)
	}))
	if err != nil {
		return err
	}
	r := rec.FinishRecording()

	if name == windowBackend {
		return showWindow(r, style, windowTitle)
	}

	backend, err := recording.NewBackend(name)
	if err != nil {
		return err
	}
	format, _ := recording.Lookup(name)
	if err := r.Playback(backend, style); err != nil {
		return err
	}
	return save(backend, format, f.output, stdout)
}

// backendName resolves --backend, falling back to the extension of
// --output and then to svg.
func backendName(f renderFlags) (string, error) {
	if f.backend != "" {
		return f.backend, nil
	}
	if f.output == "" || f.output == "-" {
		return defaultBackend, nil
	}
	format, err := recording.ForFile(f.output)
	if err != nil {
		return "", err
	}
	return format.Name, nil
}

func save(backend recording.Backend, format recording.Format, output string, stdout io.Writer) error {
	if output == "" {
		output = defaultOutput(format)
	}
	if output == "-" {
		wb, ok := backend.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("backend %q cannot write to stdout", format.Name)
		}
		_, err := wb.WriteTo(stdout)
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", format.Name)
	}
	if err := fb.SaveToFile(output); err != nil {
		return err
	}
	ornament.Logger().Info("ornament saved", "backend", format.Name, "output", output)
	return nil
}

func defaultOutput(format recording.Format) string {
	return "ornament" + format.Extension
}
