package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/piwi3910/budomari/internal/model"
	"github.com/piwi3910/budomari/internal/project"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  = slog.Default()

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AF87"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF00"))
)

var rootCmd = &cobra.Command{
	Use:   "budomari",
	Short: "Guillotine cutting planner for sheet goods",
	Long: `budomari plans how to cut rectangular pieces out of stock sheets
with straight edge-to-edge (guillotine) cuts.

Every plan is packed twice: once for the best material yield and once
for the fewest cuts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.budomari.yaml)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("app-config", project.DefaultConfigPath(), "saved user defaults (JSON or YAML)")
	flags.String("preset", "", "sheet preset: "+strings.Join(model.GetPresetNames(), ", "))
	flags.Float64("width", 0, "sheet width in mm (overrides the preset)")
	flags.Float64("height", 0, "sheet height in mm (overrides the preset)")
	flags.Float64("kerf", 0, "blade width in mm")
	flags.Float64("margin", 0, "edge trim on every sheet side in mm")
	flags.Bool("rotate", true, "allow pieces to be rotated 90 degrees")
	flags.String("algorithm", "", "packing strategy: guillotine, shelf or column")
	flags.Int("max-evals", 0, "candidate evaluation budget per run (0 = unlimited)")

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if err := viper.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	rootCmd.AddCommand(PlanCmd)
	rootCmd.AddCommand(CompareCmd)
	rootCmd.AddCommand(PresetsCmd)
	rootCmd.AddCommand(TemplatesCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".budomari.yaml"))
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("budomari")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Cannot read config %s: %v", cfgFile, err)))
	}
}

// runConfig layers the saved user defaults, then config file, environment
// and flags on top of model.DefaultConfig.
func runConfig() (model.Config, error) {
	cfg := model.DefaultConfig()

	app, err := project.LoadAppConfig(viper.GetString("app-config"))
	if err != nil {
		return cfg, err
	}
	app.ApplyToConfig(&cfg)

	if name := viper.GetString("preset"); name != "" {
		preset, ok := model.GetPreset(name)
		if !ok {
			return cfg, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(model.GetPresetNames(), ", "))
		}
		preset.Apply(&cfg)
	}
	if viper.IsSet("width") {
		cfg.SheetWidth = viper.GetFloat64("width")
	}
	if viper.IsSet("height") {
		cfg.SheetHeight = viper.GetFloat64("height")
	}
	if viper.IsSet("kerf") {
		cfg.Kerf = viper.GetFloat64("kerf")
	}
	if viper.IsSet("margin") {
		cfg.EdgeMargin = viper.GetFloat64("margin")
	}
	if viper.IsSet("rotate") {
		cfg.AllowRotation = viper.GetBool("rotate")
	}
	if alg := viper.GetString("algorithm"); alg != "" {
		cfg.Algorithm = model.Algorithm(strings.ToLower(alg))
	}
	if viper.IsSet("max-evals") {
		cfg.MaxEvaluations = viper.GetInt("max-evals")
	}
	return cfg, nil
}
