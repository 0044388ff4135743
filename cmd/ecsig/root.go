package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-secp/internal/logging"
	"github.com/mahdiidarabi/ecdsa-secp/internal/parser"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecarith"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/ecsig"
	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

const envPrefix = "ECSIG"

// Configuration keys shared by flags, environment and config file.
const (
	keyConfig      = "config"
	keyCurve       = "curve"
	keyBackend     = "backend"
	keyMaxAttempts = "max-attempts"
	keyStrictKeys  = "strict-keys"
	keyWorkers     = "workers"
	keyLogLevel    = "log-level"
	keyLogFormat   = "log-format"
	keyFormat      = "format"
)

// errRejected makes the process exit with status 1 after a failed
// verification without printing an error.
var errRejected = errors.New("signature rejected")

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	logger *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "ecsig",
		Short:         "Sign and verify digests on the SECP/SECT curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "Config file (yaml, json or toml)")
	flags.String(keyCurve, string(secp.SECP256K1), "Curve name")
	flags.String(keyBackend, ecarith.BackendAuto, "Arithmetic backend ("+strings.Join(ecarith.Backends(), ", ")+")")
	flags.Int(keyMaxAttempts, ecsig.DefaultMaxAttempts, "Maximum random draws per signature or strict key")
	flags.Bool(keyStrictKeys, false, "Reject private scalars outside [1, n-1]")
	flags.String(keyLogLevel, "warn", "Log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "console", "Log format (console, json or logfmt)")
	bindFlags(a.v, flags)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.curvesCmd(),
		a.keygenCmd(),
		a.signCmd(),
		a.verifyCmd(),
		a.verifyBatchCmd(),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(flags)
}

// init loads the optional config file and builds the logger.
func (a *app) init() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	logger, err := logging.New(logging.Config{
		Level:  a.v.GetString(keyLogLevel),
		Format: a.v.GetString(keyLogFormat),
	})
	if err != nil {
		return err
	}
	a.logger = logger

	// Worker pools size themselves from GOMAXPROCS, which should follow the
	// container CPU quota.
	if _, err := maxprocs.Set(maxprocs.Logger(a.logger.Sugar().Debugf)); err != nil {
		a.logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}
	return nil
}

// curve resolves the configured curve name.
func (a *app) curve() (*secp.DomainParameters, error) {
	params, err := secp.Lookup(a.v.GetString(keyCurve))
	if err != nil {
		return nil, errors.Wrapf(err, "valid curves: %s", curveList())
	}
	return params, nil
}

// engine builds a signature engine from the configuration.
func (a *app) engine() (*ecsig.Engine, error) {
	params, err := a.curve()
	if err != nil {
		return nil, err
	}
	p, err := ecarith.NewBackend(params, a.v.GetString(keyBackend))
	if err != nil {
		return nil, err
	}
	return ecsig.NewEngine(p).
		WithMaxAttempts(a.v.GetInt(keyMaxAttempts)).
		WithStrictKeys(a.v.GetBool(keyStrictKeys)).
		WithLogger(a.logger), nil
}

func curveList() string {
	names := make([]string, 0, len(secp.Curves()))
	for _, c := range secp.Curves() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// addDigestFlags registers the mutually exclusive --digest and --message
// inputs.
func addDigestFlags(cmd *cobra.Command) {
	cmd.Flags().String("digest", "", "Digest to sign or verify, hex")
	cmd.Flags().String("message", "", "Message whose SHA-256 digest is signed or verified")
}

func readDigest(cmd *cobra.Command) ([]byte, error) {
	digestHex, _ := cmd.Flags().GetString("digest")
	message, _ := cmd.Flags().GetString("message")
	digestSet := cmd.Flags().Changed("digest")
	messageSet := cmd.Flags().Changed("message")

	switch {
	case digestSet && messageSet:
		return nil, errors.New("--digest and --message are mutually exclusive")
	case digestSet:
		digest, err := parser.ParseHexBytes(digestHex)
		return digest, errors.Wrap(err, "--digest")
	case messageSet:
		return parser.HashMessage([]byte(message)), nil
	default:
		return nil, errors.New("one of --digest or --message is required")
	}
}
