package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "database:\n  user: blog\n"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "blog", cfg.RabbitMQ.Exchange)
	assert.Equal(t, 5*time.Second, cfg.RabbitMQ.ConfirmTimeout)
	assert.Equal(t, int64(1), cfg.Blog.DefaultAuthorID)
	assert.Equal(t, 10, cfg.Blog.PerPage)
	assert.Equal(t, 15, cfg.Blog.ManagementPerPage)
	assert.Equal(t, 50, cfg.Blog.MaxPerPage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("BLOG_TEST_DB_PASSWORD", "s3cret")
	t.Setenv("BLOG_TEST_AMQP_URL", "amqp://user:pw@rabbit:5672/")

	cfg, err := Load(writeConfig(t, `
database:
  host: db
  port: 6543
  user: blog
  password: ${BLOG_TEST_DB_PASSWORD}
  dbname: blog
http:
  addr: ":9000"
  request_timeout: 2s
rabbitmq:
  enabled: true
  url: ${BLOG_TEST_AMQP_URL}
blog:
  default_author_id: 7
  per_page: 20
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "host=db port=6543 user=blog password=s3cret dbname=blog sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "amqp://user:pw@rabbit:5672/", cfg.RabbitMQ.URL)
	assert.Equal(t, int64(7), cfg.Blog.DefaultAuthorID)
	assert.Equal(t, 20, cfg.Blog.PerPage)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	_, err = Load(writeConfig(t, "database: [not, a, map"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
