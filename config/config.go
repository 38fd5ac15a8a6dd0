package config

import (
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SysConfig system level config
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig http server config
type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

// DBConfig database config
type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// LogConfig logger config
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "solarportal",
		Location: "Asia/Kolkata",
		Workdir:  "/var/solarportal",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-solarportal-0cc2-4f52-b33d",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "solarportal",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/solarportal/solarportal.log",
	},
}

func setEnvValue(name string, val *string) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue, ok := os.LookupEnv(name); ok {
		if ivalue, err := strconv.Atoi(evalue); err == nil {
			*val = ivalue
		}
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

// LoadConfig loads the YAML configuration file when present, then applies
// environment overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg = new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				cfg = DefaultAppConfig
			}
		}
	}

	setEnvValue("SOLARPORTAL_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("SOLARPORTAL_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("SOLARPORTAL_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("SOLARPORTAL_WEB_PORT", &cfg.Web.Port)
	setEnvValue("SOLARPORTAL_WEB_SECRET", &cfg.Web.Secret)

	setEnvValue("SOLARPORTAL_DB_TYPE", &cfg.Database.Type)
	setEnvValue("SOLARPORTAL_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("SOLARPORTAL_DB_PORT", &cfg.Database.Port)
	setEnvValue("SOLARPORTAL_DB_NAME", &cfg.Database.Name)
	setEnvValue("SOLARPORTAL_DB_USER", &cfg.Database.User)
	setEnvValue("SOLARPORTAL_DB_PWD", &cfg.Database.Passwd)

	setEnvValue("SOLARPORTAL_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("SOLARPORTAL_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = path.Join(cfg.System.Workdir, "solarportal.log")
	}

	return cfg
}
