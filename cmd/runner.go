package main

import (
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Flokey82/gendelaunay"
	"github.com/Flokey82/gendelaunay/pointgen"
)

var (
	configPath string
	verbose    bool

	dim        int
	numPoints  int
	dist       string
	seed       int64
	backend    string
	exact      bool
	passes     int
	scale      float64
	perturb    float64
	runTest    bool
	dump       bool
	svgPath    string
	savePath   string
	cpuprofile string
	memprofile string

	rootCmd = &cobra.Command{
		Use:   "runner",
		Short: "Delaunay triangulation demo and debugging tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Generate a point set and triangulate it",
		RunE:  runTriangulate,
	}

	checkCmd = &cobra.Command{
		Use:   "check [file]",
		Short: "Load a saved triangulation and validate it",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	f := runCmd.Flags()
	f.IntVar(&dim, "dim", 2, "dimension of the points")
	f.IntVar(&numPoints, "points", 1000, "number of points")
	f.StringVar(&dist, "dist", "uniform", "point distribution: uniform, grid, clustered or sphere")
	f.Int64Var(&seed, "seed", 1234, "random seed")
	f.StringVar(&backend, "backend", "", "force a back-end (fast, clarkson, watson, general) instead of the factory choice")
	f.BoolVar(&exact, "exact", false, "require an exact triangulation")
	f.IntVar(&passes, "passes", 0, "refinement sweeps to run after construction (2-D only)")
	f.Float64Var(&scale, "scale", 1, "multiply all coordinates by this factor")
	f.Float64Var(&perturb, "perturb", 0, "move every coordinate by up to this amount")
	f.BoolVar(&runTest, "test", false, "validate the triangulation")
	f.BoolVar(&dump, "dump", false, "print the triangulation tables")
	f.StringVar(&svgPath, "svg", "", "write an SVG drawing to this file (2-D only)")
	f.StringVar(&savePath, "save", "", "save samples and triangulation to this file")
	f.StringVar(&cpuprofile, "cpuprofile", "", "write cpu profile to file")
	f.StringVar(&memprofile, "memprofile", "", "write memory profile to this file")

	checkCmd.Flags().IntVar(&passes, "passes", 0, "refinement sweeps to run before validating (2-D only)")

	rootCmd.AddCommand(runCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*gendelaunay.Config, error) {
	if configPath == "" {
		return gendelaunay.NewConfig(), nil
	}
	return gendelaunay.LoadConfig(configPath)
}

func generate() ([][]float64, error) {
	rnd := rand.New(rand.NewSource(seed))
	switch dist {
	case "uniform":
		return pointgen.Uniform(rnd, dim, numPoints, 1000), nil
	case "grid":
		side := 1
		for side*side < numPoints {
			side++
		}
		return pointgen.Grid(side, side, 10), nil
	case "clustered":
		return pointgen.Clustered(seed, dim, numPoints, 1000), nil
	case "sphere":
		return pointgen.FibonacciSphere(seed, numPoints, 0.5), nil
	}
	return nil, errors.Errorf("unknown distribution %q", dist)
}

func runTriangulate(cmd *cobra.Command, args []string) error {
	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	samples, err := generate()
	if err != nil {
		return err
	}
	if scale != 1 {
		gendelaunay.Scale(samples, scale, false)
	}
	if perturb > 0 {
		gendelaunay.PerturbRand(rand.New(rand.NewSource(seed+1)), samples, perturb, false)
	}

	reg := prometheus.NewRegistry()
	factory := gendelaunay.NewFactory(cfg, slog.Default(), gendelaunay.NewMetrics(reg))

	start := time.Now()
	var tri *gendelaunay.Triangulation
	if backend == "" {
		tri, err = factory.Triangulate(samples, exact)
	} else {
		var kind gendelaunay.Kind
		if kind, err = gendelaunay.ParseKind(backend); err != nil {
			return err
		}
		tri, err = factory.Run(kind, samples)
	}
	if err != nil {
		return err
	}
	slog.Info("triangulated",
		"points", gendelaunay.NumSamples(samples),
		"dim", len(samples),
		"simplices", tri.NumSimplices(),
		"edges", tri.NumEdges,
		"duration", time.Since(start))

	if passes > 0 {
		n, err := tri.Improve(samples, passes)
		if err != nil {
			return err
		}
		slog.Info("refined", "flips", n)
	}
	if runTest {
		if err := tri.Validate(samples); err != nil {
			return errors.Wrap(err, "triangulation is invalid")
		}
		slog.Info("triangulation is valid")
	}
	if dump {
		fmt.Fprint(cmd.OutOrStdout(), tri.SampleString(samples))
	}
	if svgPath != "" {
		if err := writeSVG(svgPath, tri, samples); err != nil {
			return err
		}
	}
	if savePath != "" {
		if err := save(savePath, tri, samples); err != nil {
			return err
		}
	}
	logMetrics(reg)

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			return err
		}
		defer f.Close()
		return pprof.WriteHeapProfile(f)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	samples, err := gendelaunay.ReadSamples(f)
	if err != nil {
		return err
	}
	tri, err := gendelaunay.ReadTriangulation(f)
	if err != nil {
		return err
	}
	if passes > 0 {
		if err := tri.Finish(samples); err != nil {
			return err
		}
		n, err := tri.Improve(samples, passes)
		if err != nil {
			return err
		}
		slog.Info("refined", "flips", n)
	}
	if err := tri.Validate(samples); err != nil {
		return errors.Wrapf(err, "%s: triangulation is invalid", args[0])
	}
	slog.Info("triangulation is valid",
		"file", args[0],
		"points", gendelaunay.NumSamples(samples),
		"simplices", tri.NumSimplices(),
		"edges", tri.NumEdges)
	return nil
}

func writeSVG(path string, tri *gendelaunay.Triangulation, samples [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tri.ExportSVG(f, samples, 1000, 1000)
}

func save(path string, tri *gendelaunay.Triangulation, samples [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gendelaunay.WriteSamples(f, samples); err != nil {
		return err
	}
	return tri.WriteBinary(f)
}

// logMetrics logs the value of every counter recorded during the run.
func logMetrics(reg *prometheus.Registry) {
	mfs, err := reg.Gather()
	if err != nil {
		slog.Warn("gathering metrics", "err", err)
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				attrs := []any{"metric", mf.GetName(), "value", c.GetValue()}
				for _, l := range m.GetLabel() {
					attrs = append(attrs, l.GetName(), l.GetValue())
				}
				slog.Debug("metric", attrs...)
			}
		}
	}
}
