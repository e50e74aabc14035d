package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBType      string
	MongoURL    string
	PostgresURL string
	JWTSecret   string

	// Contact form relay
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	ContactInbox string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DBType:       os.Getenv("DB_TYPE"),
		MongoURL:     os.Getenv("MONGO_URL"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SMTPHost:     os.Getenv("EMAIL_HOST"),
		SMTPPort:     os.Getenv("EMAIL_PORT"),
		SMTPUser:     os.Getenv("EMAIL_USER"),
		SMTPPassword: os.Getenv("EMAIL_PASS"),
		ContactInbox: os.Getenv("CONTACT_INBOX"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "mongo"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.ContactInbox == "" {
		cfg.ContactInbox = cfg.SMTPUser
	}
	return cfg
}
