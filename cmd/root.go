// Package cmd implements are's CLI using https://github.com/spf13/cobra.
package cmd

import (
	"github.com/puppetlabs/are/cmd/internal/config"
	cmdutil "github.com/puppetlabs/are/cmd/util"
	"github.com/puppetlabs/are/cmd/version"
	"github.com/puppetlabs/are/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Unfortunately, cobra.Command.Execute() can only return error objects.
// Thus, the only way for us to let each command configure its own exit
// code is to wrap that value in an error object. This should be OK since
// we want the commands to handle their own errors.
type exitCode struct {
	value int
}

// Required to implement the error interface
func (e exitCode) Error() string {
	return ""
}

// This munging's necessary to ensure that all commandMain functions return
// an exit code while also letting them be used as RunE functions that can
// be passed into Cobra.
type commandMain func(cmd *cobra.Command, args []string) exitCode
type runE func(cmd *cobra.Command, args []string) error

func toRunE(main commandMain) runE {
	return func(cmd *cobra.Command, args []string) error {
		return main(cmd, args)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "are",
		Short: "Select table rows with named predicates",
		Long: `Selects the rows of a CSV or YAML table whose value in a given column
satisfies a named predicate, like above 38 or between_or_equal_to 30 38.`,
		PersistentPreRunE: initialize,
		// Need to set these so that Cobra will not output the usage +
		// error object when Execute() returns an error, which will always
		// happen in our case because the exitCode object is technically
		// an error.
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.BuildVersion,
	}

	rootCmd.PersistentFlags().String("config-file", config.DefaultFile(), "Set the config file")
	rootCmd.PersistentFlags().String("loglevel", "warn", "Set the logging level (warn, info, debug, trace)")
	if err := viper.BindPFlag(config.LogLevelKey, rootCmd.PersistentFlags().Lookup("loglevel")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(whereCommand())
	rootCmd.AddCommand(listCommand())
	rootCmd.AddCommand(versionCommand())

	return rootCmd
}

func initialize(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	if err := config.ReadFrom(configFile); err != nil {
		return err
	}
	return log.Init(viper.GetString(config.LogLevelKey))
}

// Init initializes are's config. It must be called before Execute.
func Init() error {
	return config.Init()
}

// Execute executes the root command, returning the exit code
func Execute() int {
	return toExitCode(rootCommand().Execute())
}

func toExitCode(err error) int {
	if err == nil {
		// This can happen if the user invokes `are` without any
		// arguments, or if they invoke a help command.
		return 0
	}

	exitCode, ok := err.(exitCode)
	if !ok {
		// err is something Cobra-related, like e.g. a malformed
		// flag. Print the error, then return.
		cmdutil.ErrPrintf("Error: %v\n", err)
		return 1
	}

	return exitCode.value
}
