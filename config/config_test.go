package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetInt(ConfigBoardWidth), 7)
	is.Equal(c.GetString(ConfigScoreFunction), "improved")
	is.True(c.GetBool(ConfigIterative))
	is.Equal(c.SearchTimeout(), 10*time.Millisecond)
	is.Equal(c.TimeLimit(), 150*time.Millisecond)
	is.NoErr(c.Validate())
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("ISOLATION_TIME_LIMIT_MS", "500")
	t.Setenv("ISOLATION_BOARD_WIDTH", "9")

	c, err := Load([]string{"--board-width", "5", "--iterative=false"})
	is.NoErr(err)
	is.Equal(c.GetInt(ConfigBoardWidth), 5)
	is.Equal(c.TimeLimit(), 500*time.Millisecond)
	is.True(!c.GetBool(ConfigIterative))
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "isolation.yaml")
	err := os.WriteFile(path, []byte("score-function: aggressive\nthreads: 4\n"), 0o644)
	is.NoErr(err)

	c, err := Load([]string{"--config", path, "--threads", "2"})
	is.NoErr(err)
	is.Equal(c.GetString(ConfigScoreFunction), "aggressive")
	is.Equal(c.GetInt(ConfigThreads), 2)
}

func TestLoadRejectsBadValues(t *testing.T) {
	is := is.New(t)
	_, err := Load([]string{"--board-height", "0"})
	is.True(errors.Is(err, ErrBadConfig))

	_, err = Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	is.True(err != nil)
}
