package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

func (a *app) curvesCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "curves",
		Short: "List the supported curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "%-10s %-7s %6s %8s\n", "CURVE", "FIELD", "BITS", "SIGLEN")
			for _, c := range secp.Curves() {
				d := c.Params()
				sigLen := 2 * ((d.OrderBits() + 3) / 4)
				fmt.Fprintf(a.out, "%-10s %-7s %6d %8d\n", c, d.Kind(), d.OrderBits(), sigLen)
				if verbose {
					printParams(a, d)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the full domain parameters")
	return cmd
}

func printParams(a *app, d *secp.DomainParameters) {
	if d.Kind() == secp.Prime {
		fmt.Fprintf(a.out, "    p:  %x\n", d.P())
	} else {
		terms := make([]string, 0, len(d.Polynomial()))
		for _, e := range d.Polynomial() {
			if e == 0 {
				terms = append(terms, "1")
			} else {
				terms = append(terms, fmt.Sprintf("x^%d", e))
			}
		}
		fmt.Fprintf(a.out, "    f:  %s\n", strings.Join(terms, " + "))
	}
	fmt.Fprintf(a.out, "    a:  %x\n", d.A())
	fmt.Fprintf(a.out, "    b:  %x\n", d.B())
	fmt.Fprintf(a.out, "    Gx: %x\n", d.Gx())
	fmt.Fprintf(a.out, "    Gy: %x\n", d.Gy())
	fmt.Fprintf(a.out, "    n:  %x\n", d.Order())
	fmt.Fprintf(a.out, "    h:  %x\n", d.Cofactor())
}
