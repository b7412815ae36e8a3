package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	avlApp struct {
		rootCmd    *cobra.Command
		rootConfig *rootConfiguration
	}
	rootConfiguration struct {
		// The avl home directory
		HomeDir string
		// Configuration file URL. If it's relative, then it's relative from the HomeDir.
		CfgFile  string
		LogLevel string
		// Lower case every word before inserting it.
		Lower bool
		// Words that are never inserted.
		Exclude []string

		log zerolog.Logger
	}
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVL"
	// The default name for config file.
	defaultConfigFile = "config.yaml"
	// The default home directory.
	defaultHomeDir = "$HOME/.avl"
)

// newApp creates the avl command line application.
func newApp() *avlApp {
	rootCmd, rootConfig := newRootCmd()
	rootCmd.AddCommand(
		newBuildCmd(rootConfig),
		newCompareCmd(rootConfig),
		newLevelsCmd(rootConfig),
	)
	return &avlApp{rootCmd, rootConfig}
}

// Execute runs the application with the given arguments.
func (a *avlApp) Execute(ctx context.Context, args []string) error {
	a.rootCmd.SetArgs(args)
	return a.rootCmd.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, *rootConfiguration) {
	config := &rootConfiguration{log: zerolog.Nop()}
	var rootCmd = &cobra.Command{
		Use:   "avl",
		Short: "Build AVL trees from word lists and inspect them",
		Long: `avl reads words from files (or stdin), inserts them into an AVL tree
and reports on the resulting structure. It can also compare the balanced tree
against a plain binary search tree built from the same words.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If subcommand does not define PersistentPreRunE, the one from root cmd is used.
			if err := initializeConfig(cmd, config); err != nil {
				return err
			}
			return initializeLogger(cmd, config)
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.HomeDir, "home", defaultHomeDir, "set the AVL_HOME for this invocation")
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file location (default is $AVL_HOME/"+defaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info", "logging level (trace, debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVar(&config.Lower, "lower", false, "lower case words before inserting them")
	rootCmd.PersistentFlags().StringSliceVar(&config.Exclude, "exclude", nil, "words to leave out")
	return rootCmd, config
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig(cmd *cobra.Command, rootConfig *rootConfiguration) error {
	v := viper.New()

	rootConfig.HomeDir = os.ExpandEnv(rootConfig.HomeDir)
	if rootConfig.CfgFile == "" {
		rootConfig.CfgFile = defaultConfigFile
	}
	if !filepath.IsAbs(rootConfig.CfgFile) {
		rootConfig.CfgFile = filepath.Join(rootConfig.HomeDir, rootConfig.CfgFile)
	}
	if fileExists(rootConfig.CfgFile) {
		v.SetConfigFile(rootConfig.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", rootConfig.CfgFile, err)
		}
	}

	// a flag like --log-level binds to the environment variable AVL_LOG_LEVEL.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("bind flags failed: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to AVL_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("could not bind env to flag %s: %w", f.Name, err)
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if f.Value.Type() == "stringSlice" {
			for _, s := range v.GetStringSlice(f.Name) {
				if err := cmd.Flags().Set(f.Name, s); err != nil {
					bindFlagErr = fmt.Errorf("could not set value to flag %s: %w", f.Name, err)
					return
				}
			}
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			bindFlagErr = fmt.Errorf("could not set value to flag %s: %w", f.Name, err)
		}
	})
	return bindFlagErr
}

func initializeLogger(cmd *cobra.Command, config *rootConfiguration) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}
	config.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Str("cmd", cmd.Name()).
		Logger()
	return nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
