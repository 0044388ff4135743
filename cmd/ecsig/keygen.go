package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// keyOutput is the JSON document printed by keygen.
type keyOutput struct {
	Curve   string `json:"curve"`
	Private string `json:"private"`
	PublicX string `json:"public_x"`
	PublicY string `json:"public_y"`
}

func (a *app) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair on the configured curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			key, err := engine.GenerateKeyPair()
			if err != nil {
				return errors.Wrap(err, "failed to generate key pair")
			}

			pub := key.PublicPoint()
			if pub.IsInfinity() {
				return errors.New("generated private scalar is a multiple of the group order; run again or use --strict-keys")
			}

			enc := json.NewEncoder(a.out)
			enc.SetIndent("", "  ")
			return enc.Encode(keyOutput{
				Curve:   engine.Provider().DomainParameters().Name().String(),
				Private: key.PrivateScalar().Text(16),
				PublicX: pub.X().Text(16),
				PublicY: pub.Y().Text(16),
			})
		},
	}
}
