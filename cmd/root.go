package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nlcmd",
	Short: "Turn plain-language requests into shell commands",
	Long: `nlcmd converts natural language into runnable shell commands through a
cascade of resolution strategies: an AI classifier, parameterized command
templates, fuzzy matching against a known-query corpus, and phrase rules.

Examples:
  nlcmd ask "show me my ip address"
  nlcmd ask --run "list all files"
  nlcmd ask "create a folder called proj and then create a file named notes.txt in it"`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nlcmd.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (shows cascade diagnostics)")
	rootCmd.PersistentFlags().String("os", "", "command family to generate for: windows or linux (default: detected)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Float64("ml-threshold", 0, "minimum classifier confidence to accept (0..1)")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("os", rootCmd.PersistentFlags().Lookup("os"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("ml_threshold", rootCmd.PersistentFlags().Lookup("ml-threshold"))

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("gemini.model", "")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".nlcmd")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}
