package main

import (
	"github.com/google/uuid"
	"github.com/hupe1980/bitvec/life"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *life.Logger
	runID  string
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "bitvec",
		Short:        "Bit vector toolbox",
		Long:         `Bitwise arithmetic on binary strings and a Game of Life running on bit-vector rows.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(a.v, cmd); err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"), a.v.GetString("log-format"))
			if err != nil {
				return err
			}
			a.runID = uuid.NewString()
			a.logger = logger.WithRunID(a.runID)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a YAML, TOML or JSON config file")
	flags.String("log-level", "warn", "minimum log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log output format (text or json)")

	root.AddCommand(
		newCalcCommand(),
		newLifeCommand(a),
		newVersionCommand(),
	)
	return root
}
