package realm

import (
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"tilerealm/internal/logger"
)

const configFileName = "config.yaml"

// Settings holds process-level options that belong to no single world.
type Settings struct {
	// Seed for random number generation. Used for reproducible world
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed" envconfig:"TILEREALM_SEED"`

	// LogLevel follows the zap convention: -1 debug, 0 info, 1 warn.
	LogLevel int `yaml:"loglevel" envconfig:"TILEREALM_LOGLEVEL"`
}

// Init applies defaults.
func (x *Settings) Init() {
	x.Seed = 0
	x.LogLevel = 1
}

// Config holds the full realm configuration. The world and console
// sections stay raw key/value maps until world.Build and
// display.BuildConsoleConfig validate them.
type Config struct {
	Settings Settings       `yaml:"settings"`
	World    map[string]any `yaml:"world" ignored:"true"`
	Console  map[string]any `yaml:"console" ignored:"true"`
}

// Init applies defaults. The world section seeds a denser field of
// obstacles than world.Build alone would.
func (x *Config) Init() {
	x.Settings.Init()
	x.World = map[string]any{
		"name":      "realm",
		"obstacles": 0.05,
		"holes":     0.001,
	}
	x.Console = map[string]any{}
}

func defConfig() *Config {
	var cfg Config
	cfg.Init()
	return &cfg
}

type opts struct {
	configPath   string
	logLevel     int
	logLevelSeen bool
}

func readOpts() opts {
	o := opts{configPath: configFileName}
	helpFlag := false
	getopt.Flag(&helpFlag, 'h', "display help")
	getopt.Flag(&o.configPath, 'c', "configuration file")
	levelFlag := getopt.Flag(&o.logLevel, 'l', "log level, zap convention")

	getopt.Parse()
	if helpFlag {
		getopt.Usage()
		os.Exit(0)
	}
	o.logLevelSeen = levelFlag.Seen()
	return o
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// readFile layers the YAML file at path over cfg. A missing file is not an
// error; map sections merge key by key, so partial files keep defaults.
func readFile(cfg *Config, path string) error {
	if !fileExists(path) {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func readEnv(cfg *Config) error {
	return envconfig.Process("", cfg)
}

func prettyPrint(cfg *Config) {
	d, _ := yaml.Marshal(cfg)
	log.Infof("--- Config ---\n%s\n", string(d))
}

// GetConfig assembles the effective configuration: defaults first, then the
// YAML file, then environment variables, then command line flags.
func GetConfig() *Config {
	o := readOpts()

	cfg := defConfig()
	if err := readFile(cfg, o.configPath); err != nil {
		log.Fatalf("Failed to read %s: %v", o.configPath, err)
	}
	if err := readEnv(cfg); err != nil {
		log.Fatal(err)
	}
	if o.logLevelSeen {
		cfg.Settings.LogLevel = o.logLevel
	}

	logger.SetLevel(zapcore.Level(cfg.Settings.LogLevel))
	prettyPrint(cfg)
	return cfg
}
