package config

import (
	"time"
)

type Jwt struct {
	Secret string        `envconfig:"SECRET"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt          *Jwt   `envconfig:"JWT"`
	CookieName   string `envconfig:"COOKIE_NAME" default:"session"`
	CookieSecure bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

type Security struct {
	PinHashCost int `envconfig:"PIN_HASH_COST" default:"10"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[minibank]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"5000"`
}

// Seed describes the demonstration user registered at startup.
type Seed struct {
	Enabled  bool   `envconfig:"ENABLED" default:"true"`
	Username string `envconfig:"USERNAME" default:"user1"`
	Pin      string `envconfig:"PIN" default:"1234"`
	Balance  string `envconfig:"BALANCE" default:"1000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Auth      *Auth      `envconfig:"AUTH"`
	Security  *Security  `envconfig:"SECURITY"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Seed      *Seed      `envconfig:"SEED"`
}
