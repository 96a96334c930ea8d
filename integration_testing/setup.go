package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/2beens/liftlog/internal"
	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/pkg"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	adminUsername = "testadmin"
	adminPassword = "testpass"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	adminPasswordHash, err := pkg.HashPassword(adminPassword)
	if err != nil {
		suite.cleanup()
		log.Fatalf("hash admin password: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              "liftlog",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "9001",
		LoginRateLimitAllowedPerMin: 100,
		DefaultUserID:               "serj",
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=liftlog",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/liftlog?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	// exponential backoff until the container accepts connections
	if err := s.dockerPool.Retry(db.Ping); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	res, err := db.Exec(initSQL)
	if err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("get rows affected: %s", err)
	}

	log.Printf("postgres setup result: %d\n", numRows)

	if db.Ping() != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.workout_session
(
    id          SERIAL PRIMARY KEY,
    user_id     VARCHAR NOT NULL,
    date        VARCHAR NOT NULL,
    day         VARCHAR NOT NULL,
    week_number INTEGER NOT NULL DEFAULT 0,
    created_at  TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, date)
);

ALTER TABLE public.workout_session OWNER TO postgres;
CREATE INDEX ix_workout_session_date ON public.workout_session (date);

CREATE TABLE public.session_exercise
(
    id          SERIAL PRIMARY KEY,
    session_id  INTEGER NOT NULL REFERENCES public.workout_session (id) ON DELETE CASCADE,
    name        VARCHAR NOT NULL,
    order_index INTEGER NOT NULL,
    group_id    VARCHAR NOT NULL DEFAULT '',
    group_type  VARCHAR NOT NULL DEFAULT '',
    sets        JSONB   NOT NULL DEFAULT '[]'
);

ALTER TABLE public.session_exercise OWNER TO postgres;
CREATE INDEX ix_session_exercise_session_id ON public.session_exercise (session_id);

CREATE TABLE public.exercise_entry
(
    id           SERIAL PRIMARY KEY,
    user_id      VARCHAR NOT NULL,
    name         VARCHAR NOT NULL,
    muscle_group VARCHAR NOT NULL,
    created_at   TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT NOW(),
    deleted_at   TIMESTAMP WITHOUT TIME ZONE
);

ALTER TABLE public.exercise_entry OWNER TO postgres;
CREATE UNIQUE INDEX ux_exercise_entry_user_name
    ON public.exercise_entry (user_id, lower(name))
    WHERE deleted_at IS NULL;
`
