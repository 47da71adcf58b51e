package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floydpaths/floyd"
	"github.com/katalvlaran/floydpaths/internal/matrixfile"
)

func newDemoCmd(a *app) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the built-in sample matrices and their answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if export {
				for i, s := range floyd.Samples() {
					if i > 0 {
						fmt.Fprintln(a.out, "---")
					}
					if err := matrixfile.Encode(a.out, matrixfile.FromSample(s)); err != nil {
						return err
					}
				}
				return nil
			}

			return a.demo(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "Print the samples as YAML matrix files instead of solving them")

	return cmd
}

func (a *app) demo(ctx context.Context) error {
	for _, sample := range floyd.Samples() {
		g, err := floyd.NewGraph(sample.Rows)
		if err != nil {
			return fmt.Errorf("sample %s: %w", sample.Name, err)
		}
		s := floyd.NewSolver(g, a.solverOptions(ctx, sample.Name)...)

		fmt.Fprint(a.out, "\n\n")
		writeMatrix(a.out, sample.Rows)
		fmt.Fprintln(a.out)
		for _, q := range sample.Queries {
			writeAnswer(a.out, s.Solve(q.From, q.To))
		}
	}

	return nil
}

// writeMatrix prints rows tab-separated, one row per line.
func writeMatrix(w io.Writer, rows [][]float64) {
	cells := make([]string, 0, len(rows))
	for _, row := range rows {
		cells = cells[:0]
		for _, v := range row {
			cells = append(cells, floyd.FormatWeight(v))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}
