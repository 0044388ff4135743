package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ecdsa-secp/internal/parser"
)

func (a *app) signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a digest with a private scalar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			privHex, _ := cmd.Flags().GetString("private")
			if privHex == "" {
				return errors.New("--private is required")
			}
			digest, err := readDigest(cmd)
			if err != nil {
				return err
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}
			d, err := parser.ParseHexInt(privHex)
			if err != nil {
				return errors.Wrap(err, "--private")
			}
			key, err := engine.KeyPairFromScalar(d)
			if err != nil {
				return err
			}

			sig, err := engine.Sign(digest, key.PrivateScalar())
			if err != nil {
				return errors.Wrap(err, "failed to sign")
			}
			fmt.Fprintln(a.out, sig)
			return nil
		},
	}
	cmd.Flags().String("private", "", "Private scalar, hex")
	addDigestFlags(cmd)
	return cmd
}
