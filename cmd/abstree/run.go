package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/abstree/config"
	"github.com/katalvlaran/abstree/region"
	"github.com/katalvlaran/abstree/stats"
	"github.com/katalvlaran/abstree/verify"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run stability analysis over a dataset",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the run's YAML configuration")
	_ = runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	scheme, err := cfg.ResolveVotingScheme()
	if err != nil {
		return err
	}
	pKind, err := cfg.ResolvePerturbationKind()
	if err != nil {
		return err
	}

	f, err := loadClassifier(cfg.ClassifierPath, scheme)
	if err != nil {
		return err
	}
	ds, err := loadDataset(cfg.DatasetPath, f.N())
	if err != nil {
		return err
	}
	tv, err := loadTier(cfg.TierPath, f.N())
	if err != nil {
		return err
	}

	collector := stats.NewCollector()
	logrus.WithField("run_id", collector.RunID()).Info("starting analysis")

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	data := verify.NewAnalysisData(64, f.K())
	priCfg := verify.DefaultPriorityConfig()

	for i := 0; i < ds.NRows(); i++ {
		x, err := ds.Row(i)
		if err != nil {
			return err
		}
		refLabel, err := ds.Label(i)
		if err != nil {
			return err
		}

		p, err := perturbationFromSpec(cfg.Perturbation, pKind)
		if err != nil {
			return err
		}
		ar, err := region.New(x, p)
		if err != nil {
			return err
		}
		h, err := ar.ToHyperrectangle(nil)
		if err != nil {
			return err
		}

		status, err := verify.Stability(f, x, h, tv, timeout, priCfg, data)
		if err != nil {
			return err
		}

		renderVerdict(i, status)

		predicted := status.LabelsA.ToStrings(f.Labels())
		correct := len(predicted) == 1 && predicted[0] == refLabel
		collector.Record(correct, status.Result == verify.Stable, status.Result == verify.Unstable)
	}

	renderSummary(collector.Snapshot())

	return nil
}

func perturbationFromSpec(spec config.PerturbationSpec, kind region.Kind) (region.Perturbation, error) {
	switch kind {
	case region.LInf:
		return region.NewLInf(spec.Radius)
	case region.LInfClip:
		return region.NewLInfClip(spec.Radius, spec.Lo, spec.Hi)
	case region.FromStream:
		return region.NewFromStream(), nil
	default:
		return region.Perturbation{}, fmt.Errorf("unsupported perturbation kind %v", kind)
	}
}
