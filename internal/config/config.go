package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "jobboard.yaml"

type Server struct {
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

type Database struct {
	DSN         string `yaml:"dsn"`
	AutoMigrate bool   `yaml:"autoMigrate"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Files struct {
	CareerTips  string `yaml:"careerTips"`
	CVOutputDir string `yaml:"cvOutputDir"`
}

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
	Files    Files    `yaml:"files"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Port:        "8080",
			Mode:        "release",
			CORSOrigins: []string{"*"},
		},
		Database: Database{
			DSN:         "host=localhost user=postgres password=1234 dbname=scrapnalyze port=5432 sslmode=disable",
			AutoMigrate: true,
		},
		Log: Log{
			Level: "info",
		},
		Files: Files{
			CareerTips:  "data/career_tips.json",
			CVOutputDir: "generated_cvs",
		},
	}
}

// Load reads .env if present, then the YAML file named by JOBBOARD_CONFIG
// (or jobboard.yaml), then applies environment overrides on top.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := os.Getenv("JOBBOARD_CONFIG")
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := Default()
	if err := cfg.mergeYAML(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromYAML decodes path over the defaults. Environment overrides are not applied.
func FromYAML(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeYAML(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeYAML(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Mode, "GIN_MODE")
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Files.CareerTips, "CAREER_TIPS_FILE")
	setString(&c.Files.CVOutputDir, "CV_OUTPUT_DIR")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	if err := setBool(&c.Database.AutoMigrate, "DB_AUTO_MIGRATE"); err != nil {
		return err
	}
	return setBool(&c.Log.JSON, "LOG_JSON")
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	if c.Database.DSN == "" {
		return errors.New("database DSN is required")
	}
	if len(c.Server.CORSOrigins) == 0 {
		return errors.New("at least one CORS origin is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = b
	return nil
}
