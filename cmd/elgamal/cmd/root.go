package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ristretto-elgamal/internal/params"
)

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagHash      = "hash"
)

// cliContext carries configuration resolved once per invocation.
type cliContext struct {
	v      *viper.Viper
	logger log.Logger
}

func (c *cliContext) load(cmd *cobra.Command) error {
	c.v.SetEnvPrefix(params.EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(c.v.GetString(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", flagLogLevel, err)
	}
	opts := []log.Option{log.LevelOption(lvl), log.ColorOption(false)}
	switch format := c.v.GetString(flagLogFormat); format {
	case "plain":
	case "json":
		opts = append(opts, log.OutputJSONOption())
	default:
		return fmt.Errorf("invalid %s %q (plain|json)", flagLogFormat, format)
	}
	c.logger = log.NewLogger(cmd.ErrOrStderr(), opts...).With("module", "cli")
	return nil
}

func (c *cliContext) hashName() string {
	return c.v.GetString(flagHash)
}

// NewRootCmd creates a new root command for the elgamal CLI. It is called once in main.
func NewRootCmd() *cobra.Command {
	ctx := &cliContext{v: viper.New(), logger: log.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:           params.BinaryName,
		Short:         params.AppName + " tool",
		Long:          "Generate keys, encode messages and run ElGamal encryption over ristretto255.\nAll values are read and printed as 0x-prefixed hex.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return ctx.load(cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagLogLevel, params.DefaultLogLevel, "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String(flagLogFormat, params.DefaultLogFormat, "log format (plain|json)")
	rootCmd.PersistentFlags().String(flagHash, params.DefaultHash, "64-byte digest for --hash-input derivations (sha512|blake2b|sha3)")

	rootCmd.AddCommand(
		newKeygenCmd(ctx),
		newPubkeyCmd(ctx),
		newMessageCmd(ctx),
		newEncryptCmd(ctx),
		newDecryptCmd(ctx),
	)
	return rootCmd
}
