package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecdsa-secp/internal/batch"
	"github.com/mahdiidarabi/ecdsa-secp/internal/parser"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

func (a *app) verifyBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-batch",
		Short: "Verify a JSON or CSV file of signature records in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				return errors.New("--file is required")
			}

			// Records without a curve field fall back to --curve.
			defaultCurve, err := secp.Lookup(a.v.GetString(keyCurve))
			if err != nil {
				return err
			}
			p, err := parser.ForFormat(a.v.GetString(keyFormat), defaultCurve.Name())
			if err != nil {
				return err
			}
			records, err := p.ParseRecords(path)
			if err != nil {
				return errors.Wrapf(err, "failed to load %s", path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			verifier := batch.NewVerifier(a.v.GetInt(keyWorkers), a.v.GetString(keyBackend)).
				WithLogger(a.logger)
			summary, err := verifier.Verify(ctx, records)
			printSummary(a, summary)
			if err != nil {
				return err
			}
			if summary.Invalid > 0 {
				return errRejected
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("file", "", "Path to the records file")
	flags.String(keyFormat, "json", "Records file format (json or csv)")
	flags.Int(keyWorkers, 0, "Number of parallel workers (0 = GOMAXPROCS)")
	bindFlags(a.v, flags)
	return cmd
}

func printSummary(a *app, s *batch.Summary) {
	if s == nil {
		return
	}
	fmt.Fprintf(a.out, "Verified %d records: %d valid, %d invalid, %d skipped\n",
		s.Total, s.Valid, s.Invalid, s.Skipped)
	for _, r := range s.Failures() {
		if r.Err != nil {
			fmt.Fprintf(a.out, "    [-] record %d (%s): %v\n", r.Index, r.Curve, r.Err)
		} else {
			fmt.Fprintf(a.out, "    [-] record %d (%s): signature does not verify\n", r.Index, r.Curve)
		}
	}
}
