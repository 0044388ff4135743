package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-secp/internal/parser"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature; exits with status 1 when it is rejected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xHex, _ := cmd.Flags().GetString("public-x")
			yHex, _ := cmd.Flags().GetString("public-y")
			sig, _ := cmd.Flags().GetString("signature")
			if xHex == "" || yHex == "" || sig == "" {
				return errors.New("--public-x, --public-y and --signature are required")
			}
			digest, err := readDigest(cmd)
			if err != nil {
				return err
			}

			x, err := parser.ParseHexInt(xHex)
			if err != nil {
				return errors.Wrap(err, "--public-x")
			}
			y, err := parser.ParseHexInt(yHex)
			if err != nil {
				return errors.Wrap(err, "--public-y")
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}

			if engine.Verify(digest, ecarith.NewPoint(x, y), sig) {
				fmt.Fprintln(a.out, "✓ valid")
				return nil
			}
			if _, err := engine.DecodeSignature(sig); err != nil {
				a.logger.Info("signature is malformed", zap.Error(err))
			}
			fmt.Fprintln(a.out, "✗ invalid")
			return errRejected
		},
	}
	cmd.Flags().String("public-x", "", "Public point x coordinate, hex")
	cmd.Flags().String("public-y", "", "Public point y coordinate, hex")
	cmd.Flags().String("signature", "", "Encoded signature")
	addDigestFlags(cmd)
	return cmd
}
