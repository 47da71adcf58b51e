package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/floydpaths/floyd"
	"github.com/katalvlaran/floydpaths/internal/matrixfile"
	"github.com/katalvlaran/floydpaths/observe"
)

var (
	errNoInput    = errors.New("no matrix given: use --matrix or pass files")
	errNoQueries  = errors.New("no queries: list them in the file or pass --from and --to")
	errQueryFlags = errors.New("--from and --to need --matrix")
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		matrixPath string
		from, to   int
	)

	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Answer shortest-path queries for matrix files",
		Long: "With --matrix, --from and --to, answers one query on one file.\n" +
			"Otherwise answers every query listed in each file; files are solved concurrently.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matrixPath != "" {
				doc, err := matrixfile.Load(matrixPath)
				if err != nil {
					return err
				}
				if queryFlags(cmd) {
					doc.Queries = []matrixfile.Query{{From: from, To: to}}
				}
				if len(doc.Queries) == 0 {
					return fmt.Errorf("%s: %w", doc.Name, errNoQueries)
				}
				return a.solveAll(cmd.Context(), []*matrixfile.Document{doc})
			}
			if len(args) == 0 {
				return errNoInput
			}
			if queryFlags(cmd) {
				return errQueryFlags
			}

			docs := make([]*matrixfile.Document, len(args))
			for i, path := range args {
				doc, err := matrixfile.Load(path)
				if err != nil {
					return err
				}
				if len(doc.Queries) == 0 {
					return fmt.Errorf("%s: %w", path, errNoQueries)
				}
				docs[i] = doc
			}

			return a.solveAll(cmd.Context(), docs)
		},
	}
	cmd.Flags().StringVar(&matrixPath, "matrix", "", "Matrix file (.yaml, .yml, .json)")
	cmd.Flags().IntVar(&from, "from", 0, "Start node")
	cmd.Flags().IntVar(&to, "to", 0, "End node")

	return cmd
}

func queryFlags(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("from") || cmd.Flags().Changed("to")
}

// solveAll answers every document on its own Solver, at most WorkerLimit at
// a time, and prints the reports in input order.
func (a *app) solveAll(ctx context.Context, docs []*matrixfile.Document) error {
	reports := make([]string, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.WorkerLimit())
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = a.solveDocument(ctx, doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprint(a.out, r)
	}

	return nil
}

// solveDocument answers the queries of doc and renders the report.
func (a *app) solveDocument(ctx context.Context, doc *matrixfile.Document) string {
	ctx, span := a.tel.Tracer().Start(ctx, "floyd.document")
	defer span.End()
	span.SetAttributes(
		attribute.String("floyd.matrix", doc.Name),
		attribute.Int("floyd.queries", len(doc.Queries)),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", doc.Name)

	g, err := floyd.NewGraph(doc.Matrix)
	if err != nil {
		a.logger.Error("invalid matrix", "matrix", doc.Name, "err", err)
	}

	var s *floyd.Solver
	if g != nil {
		s = floyd.NewSolver(g, a.solverOptions(ctx, doc.Name)...)
	}
	for _, q := range doc.Queries {
		var ans floyd.Answer
		if s != nil {
			ans = s.Solve(q.From, q.To)
		} else {
			ans = floyd.ShortestPath(doc.Matrix, q.From, q.To)
		}
		_, qspan := a.tel.Tracer().Start(ctx, "floyd.query")
		observe.RecordAnswer(qspan, ans)
		qspan.End()

		if !ans.Complete() {
			a.logger.Warn("query failed", "matrix", doc.Name, "from", q.From, "to", q.To, "reason", ans.Message)
		}
		writeAnswer(&b, ans)
	}

	return b.String()
}

func (a *app) solverOptions(ctx context.Context, name string) []floyd.Option {
	obs := observe.Multi{
		observe.NewLogger(a.logger, "matrix", name),
		a.inst.Observer(ctx, attribute.String("floyd.matrix", name)),
	}

	return append(a.cfg.SolverOptions(), floyd.WithObserver(obs))
}

// writeAnswer prints an answer followed by a blank line.
func writeAnswer(w io.Writer, ans floyd.Answer) {
	fmt.Fprintln(w, ans.String())
	fmt.Fprintln(w)
}
