package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"github.com/seqcast/seqcast/pkg/dataset"
	"github.com/seqcast/seqcast/pkg/estimator"
)

type inspectResult struct {
	Statistics             *dataset.Statistics  `json:"statistics"`
	AutoFields             estimator.AutoFields `json:"autoFields"`
	SuggestedContextLength int                  `json:"suggestedContextLength,omitempty"`
}

// NewCmdInspect creates the inspect command.
func NewCmdInspect() *cobra.Command {
	var (
		fPredictionLength int
		fPlot             string
	)

	cmd := &cobra.Command{
		Use:   "inspect CSV_FILE",
		Short: "Derive estimator fields and statistics from a training dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ds, err := dataset.ReadCSV(f)
			if err != nil {
				return err
			}

			st, err := dataset.CalculateStatistics(ds)
			if err != nil {
				return err
			}
			af, err := estimator.DeriveAutoFields(ds)
			if err != nil {
				return err
			}

			result := inspectResult{Statistics: st, AutoFields: af}
			if fPredictionLength > 0 {
				var longest []float64
				for i := range ds {
					if len(ds[i].Target) > len(longest) {
						longest = ds[i].Target
					}
				}
				result.SuggestedContextLength = dataset.SuggestContextLength(longest, fPredictionLength)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if fPlot != "" {
				if err := renderPlot(ds, fPlot); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fPredictionLength, "prediction-length", 0, "forecast horizon used for the context length suggestion")
	cmd.Flags().StringVar(&fPlot, "plot", "", "write an html chart of every series to the given file")

	return cmd
}

func renderPlot(ds dataset.Dataset, path string) error {
	page := components.NewPage()
	for i := range ds {
		page.AddCharts(ds[i].Plot())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
