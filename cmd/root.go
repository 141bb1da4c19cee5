package cmd

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/ldnexus/match-engine/internal/embedding"
	"github.com/ldnexus/match-engine/internal/secrets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "match-engine"
)

type Config struct {
	Embedding *EmbeddingConfig `mapstructure:"embedding"`
	Server    *ServerConfig    `mapstructure:"server"`
	UAE       *UAEConfig       `mapstructure:"uae"`
}

type EmbeddingConfig struct {
	Provider       string        `mapstructure:"provider"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	MaxRetries     int           `mapstructure:"max-retries"`
	Gemini         *GeminiConfig `mapstructure:"gemini"`
	OpenAI         *OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	BaseURL    string `mapstructure:"base-url"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// UAEConfig holds default business-context values applied to UAE scoring
// when the caller provides no overrides.
type UAEConfig struct {
	Emirate             string   `mapstructure:"emirate"`
	CompanyType         string   `mapstructure:"company-type"`
	CulturalSensitivity string   `mapstructure:"cultural-sensitivity"`
	Compliance          []string `mapstructure:"compliance"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "match-engine scores L&D professional profiles against job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("embedding.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("embedding.openai.api-key-file", "OPENAI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding OPENAI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is match-engine.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Local .env files may carry key-file paths during development.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; flags and env bindings are enough for the
	// heuristic-only mode.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// buildProvider constructs and probes the embedding provider from config.
// A missing or broken embedding setup is not fatal: the caller gets a nil
// provider and scoring degrades to the heuristic path.
func buildProvider(ctx context.Context, cfg *Config, logger *zap.Logger) *embedding.Provider {
	if cfg == nil || cfg.Embedding == nil {
		logger.Info("no embedding configuration; heuristic scoring only")
		return nil
	}

	clientCfg, err := resolveClientConfig(cfg.Embedding)
	if err != nil {
		logger.Warn("embedding credentials unavailable; heuristic scoring only", zap.Error(err))
		return nil
	}

	client, err := embedding.NewClient(ctx, clientCfg)
	if err != nil {
		logger.Warn("building embedding client failed; heuristic scoring only", zap.Error(err))
		return nil
	}

	var opts []embedding.ProviderOption
	if cfg.Embedding.RequestTimeout > 0 {
		opts = append(opts, embedding.WithRequestTimeout(cfg.Embedding.RequestTimeout))
	}
	if cfg.Embedding.MaxRetries > 0 {
		opts = append(opts, embedding.WithMaxRetries(cfg.Embedding.MaxRetries))
	}

	provider := embedding.NewProvider(client, logger, opts...)

	// Probe failure leaves the provider invalid; every score call will then
	// short-circuit to the heuristic without further API traffic.
	_ = provider.Init(ctx)

	return provider
}

func resolveClientConfig(cfg *EmbeddingConfig) (embedding.ClientConfig, error) {
	clientCfg := embedding.ClientConfig{Provider: cfg.Provider}

	switch clientCfg.Provider {
	case "openai":
		if cfg.OpenAI == nil {
			return clientCfg, errOpenAINotConfigured
		}
		key, err := secrets.Load(secrets.Source{
			Name: "openai api key",
			File: cfg.OpenAI.APIKeyFile,
		})
		if err != nil {
			return clientCfg, err
		}
		clientCfg.APIKey = key
		clientCfg.Model = cfg.OpenAI.Model
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	default:
		if cfg.Gemini == nil {
			return clientCfg, errGeminiNotConfigured
		}
		key, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
		})
		if err != nil {
			return clientCfg, err
		}
		clientCfg.APIKey = key
		clientCfg.Model = cfg.Gemini.Model
	}

	return clientCfg, nil
}
