package site

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/core/markup"
	"github.com/dmitrymomot/cmsnav/core/menu"
	"github.com/dmitrymomot/cmsnav/core/server"
	"github.com/dmitrymomot/cmsnav/integration/database/pg"
	"github.com/dmitrymomot/cmsnav/integration/database/redis"
	public "github.com/dmitrymomot/cmsnav/internal/site"
	"github.com/dmitrymomot/cmsnav/middleware"
)

type Config struct {
	DB     pg.Config
	Redis  redis.Config
	Server server.Config
	Menu   menu.Config `envPrefix:"MENU_"`
	Site   public.Config

	AppName       string        `env:"APP_NAME" envDefault:"cmsnav"`
	Env           string        `env:"APP_ENV" envDefault:"development"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLocale string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SocialLinks   string        `env:"SOCIAL_LINKS"`
	PagesCacheTTL time.Duration `env:"PAGES_CACHE_TTL" envDefault:"5m"`
	BodyLimit     int64         `env:"HTTP_BODY_LIMIT" envDefault:"1048576"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// SiteConfig returns the public site settings with the social links parsed.
func (c Config) SiteConfig() public.Config {
	sc := c.Site
	if c.SocialLinks != "" {
		sc.Social = markup.ParseSocialLinks(c.SocialLinks)
	}
	return sc
}

// Logger builds the application logger: JSON in production, text otherwise.
// Records written with a request context carry the request id.
func (c Config) Logger() *slog.Logger {
	env := logger.WithDevelopment(c.AppName)
	if c.IsProduction() {
		env = logger.WithProduction(c.AppName)
	}
	return logger.New(
		env,
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)
}
