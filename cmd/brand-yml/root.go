package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"brand-yml/internal/brand"
)

// Configuration keys. Each is also read from BRAND_YML_<KEY>, with dashes
// replaced by underscores.
const (
	keyFile      = "file"
	keyLogLevel  = "log-level"
	keyDebugDump = "debug-dump"
	keyOutput    = "output"
	keyPrefix    = "prefix"
)

const envPrefix = "BRAND_YML"

// app carries the configuration shared by every command.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "brand-yml",
		Short: "Validate and resolve brand documents",
		Long: `brand-yml validates a brand document (_brand.yml): color references are
resolved to literal values, typography colors are projected from the theme,
fonts are classified and web-font import URLs are built.`,
		Example: `  # Validate the _brand.yml of the current project
  brand-yml check

  # Print the resolved document
  brand-yml resolve --file site/_brand.yml

  # Write a stylesheet
  brand-yml css --output dist`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogger(a.v.GetString(keyLogLevel))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP(keyFile, "f", ".", "Brand file, or a directory to search for "+brand.ProjectFileName)
	rootCmd.PersistentFlags().String(keyLogLevel, "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool(keyDebugDump, false, "Dump the resolved brand at debug level")

	for _, key := range []string{keyFile, keyLogLevel, keyDebugDump} {
		_ = a.v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	rootCmd.AddCommand(
		newCheckCmd(a),
		newResolveCmd(a),
		newFontsCmd(a),
		newCSSCmd(a),
		newShowCmd(a),
	)

	return rootCmd
}

// initLogger installs the default logger with a solid background per level.
func initLogger(level string) {
	logger := log.New(os.Stderr)
	logger.SetColorProfile(lipgloss.ColorProfile())
	logger.SetStyles(&log.Styles{
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: levelStyle("DEBUG", "#3F51B5"),
			log.InfoLevel:  levelStyle("INFO", "#4CAF50"),
			log.WarnLevel:  levelStyle("WARN", "#FF9800"),
			log.ErrorLevel: levelStyle("ERROR", "#F44336"),
			log.FatalLevel: levelStyle("FATAL", "#F44336"),
		},
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Bold(true),
		Value: lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),
	})

	var (
		logLevel log.Level
		invalid  bool
	)

	switch strings.ToLower(level) {
	case "debug":
		logLevel = log.DebugLevel
	case "", "info":
		logLevel = log.InfoLevel
	case "warn", "warning":
		logLevel = log.WarnLevel
	case "error":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
		invalid = true
	}

	logger.SetLevel(logLevel)
	log.SetDefault(logger)

	if invalid {
		logger.Warn("Invalid log level, using default", "level", level, "default", "info")
	}
}

func levelStyle(name, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(name).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("#000000")).
		Padding(0, 1)
}

// load loads the configured brand file.
func (a *app) load() (*brand.Brand, error) {
	b, err := brand.LoadFile(a.v.GetString(keyFile))
	if err != nil {
		return nil, err
	}

	if a.v.GetBool(keyDebugDump) {
		log.Debug("Resolved brand", "path", b.Path)
		log.Debug(spew.Sdump(b))
	}

	return b, nil
}
