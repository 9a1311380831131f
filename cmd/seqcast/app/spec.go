package app

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/seqcast/seqcast/pkg/estimator"
)

// estimatorSpec is the YAML document accepted by the validate and build
// commands.
type estimatorSpec struct {
	Variant string           `json:"variant"`
	Config  estimator.Config `json:"config"`
}

func readEstimatorSpec(path string) (*estimatorSpec, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec estimatorSpec
	if err := yaml.Unmarshal(buf, &spec); err != nil {
		return nil, fmt.Errorf("cannot parse estimator spec %s: %v", path, err)
	}
	return &spec, nil
}

// NewCmdValidate creates the validate command.
func NewCmdValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate SPEC_FILE",
		Short: "Validate an estimator spec and print the normalized configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readEstimatorSpec(args[0])
			if err != nil {
				return err
			}

			est, err := estimator.New(estimator.Variant(spec.Variant), spec.Config)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(est.Config)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	return &cobra.Command{
		Use:   "build SPEC_FILE",
		Short: "Assemble the full estimator bundle and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readEstimatorSpec(args[0])
			if err != nil {
				return err
			}

			est, err := estimator.New(estimator.Variant(spec.Variant), spec.Config)
			if err != nil {
				return err
			}
			if est.SeedSources() {
				klog.InfoS("Seeded pseudo-random sources from the estimator spec.", "seed", *est.Config.Seed)
			}

			out, err := json.MarshalIndent(est, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
