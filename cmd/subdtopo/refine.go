package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subdiv/internal/config"
	"github.com/katalvlaran/subdiv/internal/logger"
)

func newRefineCmd(g *globalFlags) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Refine the mesh described by a YAML run configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, err := g.newLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.LogFile)
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			desc, err := cfg.Descriptor()
			if err != nil {
				return err
			}
			typ, opts, err := cfg.SchemeOptions()
			if err != nil {
				return err
			}
			p := run{
				desc:     desc,
				typ:      typ,
				opts:     opts,
				adaptive: cfg.Refine.Mode == config.ModeAdaptive,
				uniform:  cfg.UniformOptions(),
				adaptOpt: cfg.AdaptiveOptions(),
			}
			if err := p.execute(cmd.OutOrStdout(), log); err != nil {
				return fmt.Errorf("refine %s: %w", configPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to run configuration (YAML)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
