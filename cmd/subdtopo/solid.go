package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subdiv/builder"
	"github.com/katalvlaran/subdiv/internal/config"
	"github.com/katalvlaran/subdiv/internal/logger"
	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

type solidFlags struct {
	scheme        string
	uniform       int
	adaptive      int
	randomCreases float64
	seed          int64
	save          string
}

func newSolidCmd(g *globalFlags) *cobra.Command {
	f := &solidFlags{}
	cmd := &cobra.Command{
		Use:   "solid <tetrahedron|cube|octahedron|dodecahedron|icosahedron>",
		Short: "Refine a builtin Platonic solid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := builder.ParsePlatonicName(args[0])
			if !ok {
				return fmt.Errorf("unknown solid %q", args[0])
			}
			typ, ok := scheme.ParseType(f.scheme)
			if !ok {
				return fmt.Errorf("unknown scheme %q", f.scheme)
			}
			if cmd.Flags().Changed("uniform") && cmd.Flags().Changed("adaptive") {
				return errors.New("--uniform and --adaptive are mutually exclusive")
			}

			log, err := g.newLogger(cmd.ErrOrStderr(), logger.LevelWarn, "")
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			cons := []builder.Constructor{builder.PlatonicSolid(name)}
			if f.randomCreases > 0 {
				cons = append(cons, builder.RandomCreases(f.randomCreases))
			}
			desc, err := builder.BuildDescriptor([]builder.BuilderOption{builder.WithSeed(f.seed)}, cons...)
			if err != nil {
				return err
			}
			if f.save != "" {
				if err := config.SaveDescriptor(f.save, desc); err != nil {
					return err
				}
			}

			p := run{
				desc:     desc,
				typ:      typ,
				opts:     scheme.DefaultOptions(),
				adaptive: cmd.Flags().Changed("adaptive"),
				uniform:  refiner.DefaultUniformOptions(f.uniform),
				adaptOpt: refiner.DefaultAdaptiveOptions(f.adaptive),
			}
			return p.execute(cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringVar(&f.scheme, "scheme", scheme.Catmark.String(), "Subdivision scheme: bilinear, catmark, loop")
	cmd.Flags().IntVar(&f.uniform, "uniform", 2, "Uniform refinement level")
	cmd.Flags().IntVar(&f.adaptive, "adaptive", 0, "Adaptive isolation level (catmark only)")
	cmd.Flags().Float64Var(&f.randomCreases, "random-creases", 0, "Probability of tagging each edge as a crease")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed for --random-creases")
	cmd.Flags().StringVar(&f.save, "save", "", "Write the base mesh descriptor to this YAML file")
	return cmd
}
