package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/sw965/windy/experiment"
	"github.com/sw965/windy/policy"
)

var (
	seed       int64
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "windy",
		Short: "Train an agent on a windy gridworld and print the learned policy",
	}
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "random seed")

	example1 := &cobra.Command{
		Use:   "example1",
		Short: "10x7 board with a wind from the south",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, experiment.Example1())
		},
	}
	example2 := &cobra.Command{
		Use:   "example2",
		Short: "Express-way wind: a strong eastward push on a single y-level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, experiment.Example2())
		},
	}
	example3 := &cobra.Command{
		Use:   "example3",
		Short: "Same as example1 but with diagonal moves available too",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, experiment.Example3())
		},
	}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run an experiment described by a YAML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experiment.Load(configPath)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	runCmd.Flags().StringVar(&configPath, "config", "experiment.yaml", "path to experiment config")

	rootCmd.AddCommand(example1, example2, example3, runCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg experiment.Config) error {
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	trainer, err := cfg.Trainer()
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"steps":  trainer.TotalSteps,
	})
	log.Info("starting wild wandering")

	result, err := trainer.Run()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"episodes":           result.Episodes,
		"mean_episode_steps": meanEpisodeSteps(result.EpisodeSteps),
	}).Info("exhausted step budget, stopping")

	text, err := policy.Render(trainer.Board, result.Table, trainer.MoveSymbols, trainer.Goal)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func meanEpisodeSteps(episodeSteps []int) float64 {
	if len(episodeSteps) == 0 {
		return 0
	}
	steps := make([]float64, len(episodeSteps))
	for i, s := range episodeSteps {
		steps[i] = float64(s)
	}
	return stat.Mean(steps, nil)
}
