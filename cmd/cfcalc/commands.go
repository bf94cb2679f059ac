// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/cf"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <operand>",
		Short: "Print the expansion and approximate value of an operand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, x)
		},
	}
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Combine two operands with +, -, * (or x) or /",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			y, err := a.operand(args[2])
			if err != nil {
				return err
			}

			var z *cf.CF
			switch args[1] {
			case "+":
				z, err = x.Add(y)
			case "-":
				z, err = x.Sub(y)
			case "*", "x":
				z, err = x.Mul(y)
			case "/":
				z, err = x.Div(y)
			default:
				return fmt.Errorf("unknown operator %q (want +, -, *, x or /)", args[1])
			}
			if err != nil {
				return err
			}
			return printValue(cmd, z)
		},
	}
}

func (a *app) negCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg <operand>",
		Short: "Negate an operand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, x.Neg())
		},
	}
}

func (a *app) rcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rcp <operand>",
		Short: "Print the reciprocal of an operand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			r, err := x.Reciprocal()
			if err != nil {
				return err
			}
			return printValue(cmd, r)
		},
	}
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two operands, printing <, = or >",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			y, err := a.operand(args[1])
			if err != nil {
				return err
			}
			c, err := x.Cmp(y)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), [...]string{"<", "=", ">"}[c+1])
			return err
		},
	}
}

func (a *app) convergentsCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "convergents <operand>",
		Short: "List the leading convergents of an operand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("-n must be ≥ 1, got %d", n)
			}
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			cs, err := x.Convergents(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cs {
				if _, err := fmt.Fprintln(out, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of convergents")

	return cmd
}

// printValue writes the expansion, then its float64 approximation.
func printValue(cmd *cobra.Command, x *cf.CF) error {
	s := x.String()
	f, err := x.Float64()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n≈ %v\n", s, f)

	return err
}
