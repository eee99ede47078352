package items

import (
	"net"
	"net/url"
	"strconv"

	"git.home.luguber.info/inful/itemsvc/internal/config"
)

// BuildConnString builds a PostgreSQL connection URL from config. Credentials are
// escaped as URL userinfo so any byte survives pgx's parser.
func BuildConnString(cfg config.DatabaseConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}
