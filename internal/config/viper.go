package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/work-metrics/internal/models"
	"fjacquet/work-metrics/internal/textutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys,
// e.g. WM_LOG_LEVEL for log.level.
const EnvPrefix = "WM"

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	// Columns maps each required field to its header in the export.
	Columns struct {
		WorkType   string `mapstructure:"work_type" yaml:"work_type"`
		WorkClass  string `mapstructure:"work_class" yaml:"work_class"`
		Quantity   string `mapstructure:"quantity" yaml:"quantity"`
		Unit       string `mapstructure:"unit" yaml:"unit"`
		ClosedDate string `mapstructure:"closed_date" yaml:"closed_date"`
		User       string `mapstructure:"user" yaml:"user"`
		Item       string `mapstructure:"item" yaml:"item"`
		Location   string `mapstructure:"location" yaml:"location"`
	} `mapstructure:"columns" yaml:"columns"`

	Classification struct {
		InsertWorkType    string   `mapstructure:"insert_work_type" yaml:"insert_work_type"`
		WithdrawWorkType  string   `mapstructure:"withdraw_work_type" yaml:"withdraw_work_type"`
		PurchaseClass     string   `mapstructure:"purchase_class" yaml:"purchase_class"`
		SaleClass         string   `mapstructure:"sale_class" yaml:"sale_class"`
		ConversionClasses []string `mapstructure:"conversion_classes" yaml:"conversion_classes"`
	} `mapstructure:"classification" yaml:"classification"`

	Export struct {
		FilePrefix string `mapstructure:"file_prefix" yaml:"file_prefix"`
	} `mapstructure:"export" yaml:"export"`

	Ranking struct {
		DefaultTopN int `mapstructure:"default_top_n" yaml:"default_top_n"`
	} `mapstructure:"ranking" yaml:"ranking"`

	Cache struct {
		Size int `mapstructure:"size" yaml:"size"`
	} `mapstructure:"cache" yaml:"cache"`
}

// InitializeConfig loads configuration from defaults, an optional config.yaml
// and WM_* environment variables, in increasing precedence.
// A non-empty configFile replaces the search path.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.work-metrics")
		v.AddConfigPath(".work-metrics")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Defaults returns the built-in configuration, ignoring files and environment.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config defaults do not unmarshal: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ";")

	v.SetDefault("columns.work_type", "Typ práce")
	v.SetDefault("columns.work_class", "ID pracovní třídy")
	v.SetDefault("columns.quantity", "Množství práce")
	v.SetDefault("columns.unit", "Jednotka")
	v.SetDefault("columns.closed_date", "Uzavřená práce")
	v.SetDefault("columns.user", "ID uživatele")
	v.SetDefault("columns.item", "Č. položky")
	v.SetDefault("columns.location", "Místo")

	v.SetDefault("classification.insert_work_type", "VLOZIT")
	v.SetDefault("classification.withdraw_work_type", "VYDAT")
	v.SetDefault("classification.purchase_class", "NAKUP")
	v.SetDefault("classification.sale_class", "PRODEJ")
	v.SetDefault("classification.conversion_classes", []string{"VYROBA", "PO_POZN"})

	v.SetDefault("export.file_prefix", "work_metrics")
	v.SetDefault("ranking.default_top_n", 20)
	v.SetDefault("cache.size", 8)
}

func validateConfig(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}
	if len([]rune(cfg.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", cfg.CSV.Delimiter)
	}
	for key, header := range cfg.ColumnHeaders() {
		if strings.TrimSpace(header) == "" {
			return fmt.Errorf("columns.%s must not be empty", key)
		}
	}
	if cfg.Ranking.DefaultTopN < 1 {
		return fmt.Errorf("ranking.default_top_n must be positive, got: %d", cfg.Ranking.DefaultTopN)
	}
	if cfg.Cache.Size < 1 {
		return fmt.Errorf("cache.size must be positive, got: %d", cfg.Cache.Size)
	}
	return cfg.Vocabulary().Validate()
}

// ColumnHeaders maps canonical column keys to the configured export headers.
func (c *Config) ColumnHeaders() map[string]string {
	return map[string]string{
		models.ColWorkType:   strings.TrimSpace(c.Columns.WorkType),
		models.ColWorkClass:  strings.TrimSpace(c.Columns.WorkClass),
		models.ColQuantity:   strings.TrimSpace(c.Columns.Quantity),
		models.ColUnit:       strings.TrimSpace(c.Columns.Unit),
		models.ColClosedDate: strings.TrimSpace(c.Columns.ClosedDate),
		models.ColUser:       strings.TrimSpace(c.Columns.User),
		models.ColItem:       strings.TrimSpace(c.Columns.Item),
		models.ColLocation:   strings.TrimSpace(c.Columns.Location),
	}
}

// Vocabulary returns the normalized classification codes.
func (c *Config) Vocabulary() Vocabulary {
	return Vocabulary{
		Insert:     textutils.Normalize(c.Classification.InsertWorkType),
		Withdraw:   textutils.Normalize(c.Classification.WithdrawWorkType),
		Purchase:   textutils.Normalize(c.Classification.PurchaseClass),
		Sale:       textutils.Normalize(c.Classification.SaleClass),
		Conversion: textutils.NormalizeAll(c.Classification.ConversionClasses),
	}
}

// Delimiter returns the output CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) == 0 {
		return ';'
	}
	return r[0]
}

// Logger builds a logrus logger for this configuration.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if strings.ToLower(c.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
