package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/bfs"
	"github.com/katalvlaran/subdiv/internal/logger"
	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:          "subdtopo",
		Short:        "Refine subdivision-surface topology and report level inventories",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config or info)")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Also write logs to this file (rotated)")

	root.AddCommand(newRefineCmd(g), newSolidCmd(g))
	return root
}

// newLogger builds the run logger; flags override configured values.
func (g *globalFlags) newLogger(errOut io.Writer, level, file string) (*zap.Logger, error) {
	if g.logLevel != "" {
		level = g.logLevel
	}
	if g.logFile != "" {
		file = g.logFile
	}
	cfg := logger.Config{Level: level, Console: errOut}
	if file != "" {
		cfg.File = logger.DefaultFileConfig(file)
	}
	return logger.New(cfg)
}

// run is the plan shared by both subcommands.
type run struct {
	desc     *refiner.TopologyDescriptor
	typ      scheme.Type
	opts     scheme.Options
	adaptive bool
	uniform  refiner.UniformOptions
	adaptOpt refiner.AdaptiveOptions
}

// execute builds the refiner, refines it and prints the inventory.
func (p run) execute(out io.Writer, log *zap.Logger) error {
	r, err := refiner.NewFromDescriptor(p.desc, p.typ, p.opts,
		refiner.WithLogger(log),
		refiner.WithErrorReporter(func(kind refiner.ErrorKind, msg string) {
			log.Debug("refiner report", zap.Stringer("kind", kind), zap.String("msg", msg))
		}),
	)
	if err != nil {
		return err
	}

	if p.adaptive {
		err = r.RefineAdaptive(p.adaptOpt)
	} else {
		err = r.RefineUniform(p.uniform)
	}
	if err != nil {
		return err
	}

	log.Info("refinement complete",
		zap.Stringer("scheme", p.typ),
		zap.Bool("adaptive", p.adaptive),
		zap.Int("max_level", r.MaxLevel()))
	return writeReport(out, r)
}

// writeReport prints the shell count of the base mesh, one line per level
// and the totals.
func writeReport(out io.Writer, r *refiner.TopologyRefiner) error {
	base, err := r.Level(0)
	if err != nil {
		return err
	}
	_, shells, err := bfs.Components(base.Topology())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "shells: %d\n", shells); err != nil {
		return err
	}
	for _, lv := range r.Levels() {
		if _, err := fmt.Fprintf(out, "depth %d: %d verts, %d edges, %d faces, %d face-verts, max valence %d\n",
			lv.Depth(), lv.NumVertices(), lv.NumEdges(), lv.NumFaces(), lv.NumFaceVertices(), lv.MaxValence()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "total: %d verts, %d edges, %d faces, %d face-verts, max valence %d\n",
		r.NumVerticesTotal(), r.NumEdgesTotal(), r.NumFacesTotal(), r.NumFaceVerticesTotal(), r.MaxValence())
	if err != nil {
		return err
	}
	for c := 0; c < r.NumFVarChannels(); c++ {
		if _, err := fmt.Fprintf(out, "fvar %d: %d values\n", c, r.NumFVarValuesTotal(c)); err != nil {
			return err
		}
	}
	return nil
}
