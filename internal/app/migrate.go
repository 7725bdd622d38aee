package app

import (
	"errors"
	"net/url"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
	migrationsPath  = "migrations"
)

// migrationURL disables TLS unless the url already chooses an sslmode.
func migrationURL(pgUrl string) (string, string, error) {
	u, err := url.Parse(pgUrl)
	if err != nil {
		return "", "", errorsUtils.WrapPathErr(err)
	}
	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "disable")
	}
	u.RawQuery = q.Encode()
	return u.String(), u.Redacted(), nil
}

func Migrate(pgUrl string) {
	dsn, redacted, err := migrationURL(pgUrl)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Migrate %s", redacted)

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Fatalf("migrations directory %q does not exist", migrationsPath)
	}

	var mgrt *migrate.Migrate
	for attempts := defaultAttempts; attempts > 0; attempts-- {
		mgrt, err = migrate.New("file://"+migrationsPath, dsn)
		if err == nil {
			break
		}

		log.Infof("Postgres trying to connect, attempts left: %d", attempts-1)
		time.Sleep(defaultTimeout)
	}

	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer mgrt.Close()

	err = mgrt.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("Migration no change")
	case err != nil:
		log.Fatal(errorsUtils.WrapPathErr(err))
	default:
		log.Info("Migration successful up")
	}
}
