package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	App       AppConfig
	JWT       JWTConfig
	Payroll   PayrollConfig
	Scheduler SchedulerConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type JWTConfig struct {
	Secret string
}

// PayrollConfig carries the payroll policy constants, overridable per
// deployment.
type PayrollConfig struct {
	EmployeeRate        float64
	EmployerRate        float64
	MinimumMonthlyHours float64
}

// SchedulerConfig carries the shift-generation trigger settings.
type SchedulerConfig struct {
	// RunDay is the day of the month on which next month's rotation is
	// generated.
	RunDay int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "medishift"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	employeeRate, err := strconv.ParseFloat(getEnv("PAYROLL_EMPLOYEE_RATE", "0.20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_EMPLOYEE_RATE: %w", err)
	}
	employerRate, err := strconv.ParseFloat(getEnv("PAYROLL_EMPLOYER_RATE", "0.17"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_EMPLOYER_RATE: %w", err)
	}
	minimumHours, err := strconv.ParseFloat(getEnv("PAYROLL_MINIMUM_HOURS", "176"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MINIMUM_HOURS: %w", err)
	}
	config.Payroll = PayrollConfig{
		EmployeeRate:        employeeRate,
		EmployerRate:        employerRate,
		MinimumMonthlyHours: minimumHours,
	}

	runDay, err := strconv.Atoi(getEnv("SHIFT_GENERATION_DAY", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_GENERATION_DAY: %w", err)
	}
	config.Scheduler = SchedulerConfig{RunDay: runDay}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.EmployeeRate < 0 || c.Payroll.EmployeeRate >= 1 {
		return fmt.Errorf("PAYROLL_EMPLOYEE_RATE must be in [0, 1)")
	}
	if c.Payroll.EmployerRate < 0 || c.Payroll.EmployerRate >= 1 {
		return fmt.Errorf("PAYROLL_EMPLOYER_RATE must be in [0, 1)")
	}
	if c.Payroll.MinimumMonthlyHours <= 0 {
		return fmt.Errorf("PAYROLL_MINIMUM_HOURS must be positive")
	}
	if c.Scheduler.RunDay < 1 || c.Scheduler.RunDay > 28 {
		return fmt.Errorf("SHIFT_GENERATION_DAY must be between 1 and 28")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
