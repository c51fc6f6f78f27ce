package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/hecke"
)

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the catalog of classical groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printTitle(w, "Catalog")
			for _, d := range coxeter.Catalog() {
				arity := 0
				for _, p := range d.Generators {
					arity = p.Len()
				}
				printKeyValue(w, d.Name, fmt.Sprintf("rank %d, %d points", len(d.Generators), arity))
			}
			return nil
		},
	}
}

func newElementsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List group elements in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, name, err := loadAlgebra(cmd, opts)
			if err != nil {
				return err
			}
			g := a.Group()
			w := cmd.OutOrStdout()
			printTitle(w, "%s: %d elements", name, g.Size())
			for _, x := range g.Elements() {
				printKeyValue(w, x.Name(), fmt.Sprintf("length %d  %s", x.Length(), g.Permutation(x)))
			}
			return nil
		},
	}
}

// newBasisCmd prints every element of the basis built by build as
// "<prefix>_x = <standard expansion>".
func newBasisCmd(opts *globalOptions, use, short, prefix string, build func(*hecke.Algebra) (*hecke.Basis, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, name, err := loadAlgebra(cmd, opts)
			if err != nil {
				return err
			}
			t := newTimer(loggerFromContext(cmd.Context()))
			b, err := build(a)
			if err != nil {
				return err
			}
			t.done(use + " basis")

			w := cmd.OutOrStdout()
			printTitle(w, "%s basis of %s", use, name)
			for _, x := range a.Group().Elements() {
				fmt.Fprintf(w, "%s_%s = %s\n", prefix, x, b.At(x))
			}
			return nil
		},
	}
}

func newOrderCmd(opts *globalOptions) *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the left and right KL preorders and their cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if side != "left" && side != "right" && side != "both" {
				return fmt.Errorf("invalid --side %q (want left, right or both)", side)
			}
			a, name, err := loadAlgebra(cmd, opts)
			if err != nil {
				return err
			}
			t := newTimer(loggerFromContext(cmd.Context()))
			left, right, err := a.Orders()
			if err != nil {
				return err
			}
			t.done("orders")

			w := cmd.OutOrStdout()
			names := a.Group().Names()
			if side != "left" {
				cells, err := a.RightCells()
				if err != nil {
					return err
				}
				printTitle(w, "right order of %s", name)
				printMatrix(w, names, right)
				printTitle(w, "right cells (%d)", len(cells))
				printCells(w, cellNames(cells))
			}
			if side != "right" {
				cells, err := a.LeftCells()
				if err != nil {
					return err
				}
				printTitle(w, "left order of %s", name)
				printMatrix(w, names, left)
				printTitle(w, "left cells (%d)", len(cells))
				printCells(w, cellNames(cells))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&side, "side", "both", "which order to print: left, right or both")
	return cmd
}

func newFiltrationCmd(opts *globalOptions) *cobra.Command {
	var basis string

	cmd := &cobra.Command{
		Use:   "filtration <word>",
		Short: "Print the degree filtration of H_x in the KL or dual KL basis",
		Long:  `filtration evaluates <word> (any word in the generator labels, "e" for the identity), decomposes the standard basis element H_x in the chosen basis and prints one centred line per degree.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := loadAlgebra(cmd, opts)
			if err != nil {
				return err
			}
			x, err := a.Group().Evaluate(args[0])
			if err != nil {
				return err
			}
			hx, err := a.Standard(x)
			if err != nil {
				return err
			}

			var out string
			switch basis {
			case "kl":
				out, err = hx.KLFiltration()
			case "dual-kl":
				out, err = hx.DualKLFiltration()
			default:
				return fmt.Errorf("invalid --basis %q (want kl or dual-kl)", basis)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "H_%s in the %s basis", x, basis)
			fmt.Fprint(w, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&basis, "basis", "dual-kl", "target basis: kl or dual-kl")
	return cmd
}

func cellNames(cells [][]coxeter.Element) [][]string {
	out := make([][]string, len(cells))
	for i, cell := range cells {
		names := make([]string, len(cell))
		for j, x := range cell {
			names[j] = x.Name()
		}
		out[i] = names
	}
	return out
}
