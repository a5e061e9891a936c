package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Totarae/AudioAnalyzer/internal/predictor"
	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress    string
	ContentRoot      string
	StorageDir       string
	PredictorURL     string
	PredictorTimeout time.Duration
	MaxUploadMemory  int64
	GRPCAddress      string
	HealthInterval   time.Duration
	EnableHTTPS      bool
	TLSCertPath      string
	TLSKeyPath       string
}

// соответствие флагов ключам конфигурации
var flagKeys = map[string]string{
	"a":       "server_address",
	"r":       "content_root",
	"f":       "storage_dir",
	"p":       "predictor_url",
	"timeout": "predictor_timeout",
	"m":       "max_upload_memory",
	"g":       "grpc_address",
	"s":       "enable_https",
	"cert":    "tls_cert_path",
	"key":     "tls_key_path",
}

// NewConfig инициализирует конфигурацию на основе аргументов командной строки
func NewConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	return cfg
}

// Load собирает конфигурацию. Приоритет: флаги > переменные окружения и .env > JSON-файл > значения по умолчанию.
func Load(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_address", "localhost:8080") // Значения по умолчанию
	v.SetDefault("content_root", ".")
	v.SetDefault("storage_dir", "")
	v.SetDefault("predictor_url", predictor.DefaultURL)
	v.SetDefault("predictor_timeout", predictor.DefaultTimeout)
	v.SetDefault("max_upload_memory", 32<<20)
	v.SetDefault("grpc_address", "")
	v.SetDefault("health_interval", 30*time.Second)
	v.SetDefault("enable_https", false)
	v.SetDefault("tls_cert_path", "cert.pem")
	v.SetDefault("tls_key_path", "key.pem")

	v.AutomaticEnv()

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	fs := flag.NewFlagSet("analyzer", flag.ContinueOnError)
	fs.String("a", "", "server address")
	fs.String("r", "", "content root")
	fs.String("f", "", "audio files storage directory")
	fs.String("p", "", "prediction service URL")
	fs.String("timeout", "", "prediction request timeout")
	fs.String("m", "", "max multipart memory in bytes")
	fs.String("g", "", "gRPC health server address")
	fs.Bool("s", false, "enable HTTPS")
	fs.String("cert", "", "path to TLS certificate")
	fs.String("key", "", "path to TLS key")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Загружаем JSON-конфигурацию (если указана)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("Не удалось прочитать JSON-файл конфигурации %q: %v", *configPath, err)
		}
	}

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	v.SetConfigFile(".env")
	_ = v.MergeInConfig() // Ошибку игнорируем, если файла нет

	// Явно переданные флаги имеют высший приоритет
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	cfg := &Config{
		ServerAddress:    v.GetString("server_address"),
		ContentRoot:      v.GetString("content_root"),
		StorageDir:       v.GetString("storage_dir"),
		PredictorURL:     v.GetString("predictor_url"),
		PredictorTimeout: v.GetDuration("predictor_timeout"),
		MaxUploadMemory:  v.GetInt64("max_upload_memory"),
		GRPCAddress:      v.GetString("grpc_address"),
		HealthInterval:   v.GetDuration("health_interval"),
		EnableHTTPS:      v.GetBool("enable_https"),
		TLSCertPath:      v.GetString("tls_cert_path"),
		TLSKeyPath:       v.GetString("tls_key_path"),
	}

	// Каталог файлов по умолчанию лежит внутри content root
	if cfg.StorageDir == "" {
		cfg.StorageDir = filepath.Join(cfg.ContentRoot, "wwwroot", "AudioFiles")
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: StorageDir=%s", cfg.StorageDir)
	log.Printf("Инициализация конфигурации: PredictorURL=%s", cfg.PredictorURL)
	log.Printf("Инициализация конфигурации: PredictorTimeout=%s", cfg.PredictorTimeout)
	log.Printf("Инициализация конфигурации: GRPCAddress=%s", cfg.GRPCAddress)
	log.Printf("Инициализация конфигурации: EnableHTTPS=%v", cfg.EnableHTTPS)

	// Проверка корректности конфигурации
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.PredictorURL == "" {
		return fmt.Errorf("адрес сервиса предсказаний не может быть пустым")
	}
	if cfg.StorageDir == "" {
		return fmt.Errorf("каталог для аудиофайлов не может быть пустым")
	}
	if cfg.PredictorTimeout <= 0 {
		return fmt.Errorf("таймаут сервиса предсказаний должен быть положительным")
	}
	if cfg.MaxUploadMemory <= 0 {
		return fmt.Errorf("лимит памяти multipart должен быть положительным")
	}
	if cfg.GRPCAddress != "" && cfg.HealthInterval <= 0 {
		return fmt.Errorf("интервал проверки доступности должен быть положительным")
	}
	return nil
}
