package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/spf13/cobra"
)

// Defaults match the classic 9×7 demo maze.
const (
	defaultWidth  = 9
	defaultHeight = 7
)

// options holds the parsed flags of one invocation.
type options struct {
	width, height int
	seed          int64
	plain         bool
	verify        bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "mazegen",
		Short: "Generate a perfect maze (randomized Kruskal over a union-find)",
		Long: "mazegen carves a width×height grid into a perfect maze: every room is\n" +
			"reachable from every other by exactly one path. Width and height must be\n" +
			"odd and at least 3. The grid is printed as rows of 0 (open) and 1 (wall).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.width, "width", "W", defaultWidth, "grid width in cells (odd, >= 3)")
	f.IntVarP(&opts.height, "height", "H", defaultHeight, "grid height in cells (odd, >= 3)")
	f.Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")
	f.BoolVar(&opts.plain, "plain", false, "skip the junction pass (no decorative openings)")
	f.BoolVar(&opts.verify, "verify", false, "check the perfect-maze property before printing")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	genOpts := []maze.Option{maze.WithSeed(opts.seed)}
	if opts.plain {
		genOpts = append(genOpts, maze.WithoutDecoration())
	}

	g, err := maze.Generate(opts.width, opts.height, genOpts...)
	if err != nil {
		return err
	}
	if opts.verify {
		if err = maze.Verify(g); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g.String())
	fmt.Fprintf(out, "%dx%d  rooms=%s  carved=%s  seed=%d\n",
		g.Width(), g.Height(),
		humanize.Comma(int64(len(g.Rooms()))),
		humanize.Comma(int64(g.CarvedWalls())),
		opts.seed)

	return nil
}
