package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/maze"
)

const allHeuristics = "all"

// heuristicCommand creates the heuristic command for evaluating grid
// heuristics between two cells.
func (c *CLI) heuristicCommand() *cobra.Command {
	var from, to string

	names := []string{allHeuristics}
	for _, h := range maze.Heuristics() {
		names = append(names, string(h))
	}

	cmd := &cobra.Command{
		Use:   "heuristic [name|all]",
		Short: "Evaluate grid heuristics between two cells",
		Long: `Evaluate maze heuristics between two grid cells given as row,col.

Distances (manhattan, euclidean, chebyshev, octile) are scaled by 3 and
floored to integers. greater_diagonal_g_score is a step cost rather than a
distance: 5 for an orthogonal move and 7 otherwise.`,
		Example: `  graphwalk heuristic --from 0,0 --to 3,4
  graphwalk heuristic octile --from 1,1 --to 4,2`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := allHeuristics
			if len(args) == 1 {
				name = args[0]
			}
			hs, err := selectHeuristics(name)
			if err != nil {
				return err
			}
			a, err := parseCell("from", from)
			if err != nil {
				return err
			}
			b, err := parseCell("to", to)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("evaluating heuristics", "count", len(hs), "from", a, "to", b)
			return writeHeuristics(cmd.OutOrStdout(), hs, a, b)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start cell as row,col")
	cmd.Flags().StringVar(&to, "to", "", "goal (or neighbor) cell as row,col")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func selectHeuristics(name string) ([]maze.Heuristic, error) {
	if strings.EqualFold(strings.TrimSpace(name), allHeuristics) {
		return maze.Heuristics(), nil
	}
	h, err := maze.ParseHeuristic(name)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidHeuristic, err, "heuristic")
	}
	return []maze.Heuristic{h}, nil
}

func parseCell(flag, s string) (maze.Position, error) {
	p, err := maze.ParsePosition(s)
	if err != nil {
		return maze.Position{}, gwerrors.Wrap(gwerrors.ErrCodeInvalidInput, err, "--%s", flag)
	}
	return p, nil
}

// writeHeuristics prints one table row per heuristic.
func writeHeuristics(w io.Writer, hs []maze.Heuristic, a, b maze.Position) error {
	t := newTable("Heuristic", "Kind", "Value")
	for _, h := range hs {
		v, err := h.Eval(a, b)
		if err != nil {
			return err
		}
		kind := "distance"
		if !h.IsDistance() {
			kind = "step cost"
		}
		t.Row(string(h), kind, strconv.Itoa(v))
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n%s\n", StyleHighlight.Render(a.String()), StyleDim.Render(iconArrow), StyleHighlight.Render(b.String()), t.Render())
	return err
}
