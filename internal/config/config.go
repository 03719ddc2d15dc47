package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutos
	} `yaml:"jwt"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	RateLimit struct {
		Requests int `yaml:"requests"`
		WindowS  int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`

	Storage struct {
		BasePath string `yaml:"base_path"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Seed struct {
		AbogadoEmail    string `yaml:"abogado_email"`
		AbogadoPassword string `yaml:"abogado_password"`
		AbogadoName     string `yaml:"abogado_name"`
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig carga la configuración. Si DATABASE_URL está presente se
// arma todo desde variables de entorno (deploys tipo Render); si no,
// se lee config/config.yaml.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("no se pudo abrir el archivo de config %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("no se pudo parsear %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.CORS.Origins = splitOrigins(os.Getenv("CORS_ORIGIN"))
	cfg.Storage.BasePath = os.Getenv("UPLOADS_DIR")
	cfg.Seed.AbogadoEmail = os.Getenv("FIRST_ABOGADO_EMAIL")
	cfg.Seed.AbogadoPassword = os.Getenv("FIRST_ABOGADO_PASSWORD")
	cfg.Seed.AbogadoName = os.Getenv("FIRST_ABOGADO_NAME")
	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 120 // 2 horas
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 200
	}
	if cfg.RateLimit.WindowS == 0 {
		cfg.RateLimit.WindowS = 60
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}
	}
}

// splitOrigins parsea CORS_ORIGIN: lista separada por comas, sin barras
// finales ni entradas vacías.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
