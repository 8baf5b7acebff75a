package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/generator"
	"github.com/dnellessen/terminal-sudoku/internal/solver"
	"github.com/dnellessen/terminal-sudoku/internal/validator"
)

func newGenerateCommand() *cobra.Command {
	var (
		difficulty   string
		seed         int64
		seedPolicy   string
		checkUnique  bool
		showSolution bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			opts := []generator.Option{
				generator.WithRand(rand.New(rand.NewSource(seed))),
			}
			switch seedPolicy {
			case "last-valid":
				opts = append(opts, generator.WithSeedPolicy(generator.SeedLastValid))
			case "first-valid":
				opts = append(opts, generator.WithSeedPolicy(generator.SeedFirstValid))
			default:
				return fmt.Errorf("unknown seed policy %q", seedPolicy)
			}
			if checkUnique {
				opts = append(opts, generator.WithUniquenessCheck(solver.NewBacktracking()))
			}
			p, st, err := generator.NewRandomized(opts...).Generate(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), p.Board)
			if showSolution {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), p.Solution)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "difficulty=%s seed=%d nodes=%d dur=%s\n",
				d, seed, st.Nodes, st.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().StringVar(&seedPolicy, "seed-policy", "last-valid",
		"first-block seeding: last-valid (classic) or first-valid")
	cmd.Flags().BoolVar(&checkUnique, "check-unique", false,
		"restore cells after carving until the puzzle has a unique solution (not part of the classic generator)")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "also print the solution")
	return cmd
}

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a grid read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			solved, st, err := solver.NewBacktracking().Solve(cmd.Context(), &grid)
			if err != nil {
				return err
			}
			if !solved {
				return fmt.Errorf("grid has no legal completion (searched %d nodes)", st.Nodes)
			}
			fmt.Fprint(cmd.OutOrStdout(), grid)
			fmt.Fprintf(cmd.ErrOrStderr(), "nodes=%d dur=%s\n", st.Nodes, st.Duration.Round(time.Millisecond))
			return nil
		},
	}
	return cmd
}

func newCheckCommand() *cobra.Command {
	var originalPath string
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a filled grid against the Sudoku rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			// Without the original puzzle every cell counts as editable, so
			// all violations are reported.
			var original domain.Grid
			if originalPath != "" {
				original, err = readGridFile(originalPath)
				if err != nil {
					return err
				}
			}
			solved, conflicts, err := validator.New().Check(cmd.Context(), &grid, &original)
			if err != nil {
				return err
			}
			if solved {
				fmt.Fprintln(cmd.OutOrStdout(), "solved")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not solved")
			for _, cc := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", cc.Row+1, cc.Col+1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&originalPath, "original", "",
		"the puzzle as dealt; givens from it are never reported as conflicts")
	return cmd
}

func readGrid(cmd *cobra.Command, args []string) (domain.Grid, error) {
	if len(args) == 1 && args[0] != "-" {
		return readGridFile(args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.ParseGrid(string(data))
}

func readGridFile(path string) (domain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.ParseGrid(string(data))
}
