package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joe-Costa/ClusterPopulator/internal/plan"
)

func validParams(t *testing.T) Params {
	t.Helper()
	return Params{
		OutputPath:  t.TempDir(),
		Count:       100,
		Depth:       2,
		Concurrency: 10,
	}
}

func TestValidateAcceptsGoodParams(t *testing.T) {
	p := validParams(t)
	assert.NoError(t, p.Validate())
}

func TestValidateAcceptsMissingOutputDir(t *testing.T) {
	p := validParams(t)
	p.OutputPath = filepath.Join(t.TempDir(), "not_yet_created")
	assert.NoError(t, p.Validate())
}

func TestValidateRejections(t *testing.T) {
	for name, mutate := range map[string]func(*Params){
		"empty output":     func(p *Params) { p.OutputPath = "" },
		"zero count":       func(p *Params) { p.Count = 0 },
		"count over max":   func(p *Params) { p.Count = plan.MaxCount + 1 },
		"zero depth":       func(p *Params) { p.Depth = 0 },
		"depth over max":   func(p *Params) { p.Depth = plan.MaxDepth + 1 },
		"zero concurrency": func(p *Params) { p.Concurrency = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			p := validParams(t)
			mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, plan.ErrArgument)
		})
	}
}

func TestValidateRejectsFileAsOutput(t *testing.T) {
	f := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	p := validParams(t)
	p.OutputPath = f
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrArgument)
}

func TestLoadDefaults(t *testing.T) {
	v := Load()
	assert.Equal(t, DefaultOut, v.GetString("out"))
	assert.Equal(t, DefaultCount, v.GetInt("count"))
	assert.Equal(t, DefaultDepth, v.GetInt("depth"))
	assert.Equal(t, DefaultConcurrency, v.GetInt("concurrency"))
	assert.False(t, v.GetBool("windows"))
	assert.True(t, v.GetBool("timestamps"))
	assert.False(t, v.GetBool("quiet"))
	assert.False(t, v.IsSet("seed"))
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("POPULATOR_OUT", "/srv/demo_share")
	t.Setenv("POPULATOR_COUNT", "250")
	t.Setenv("POPULATOR_DEPTH", "3")
	t.Setenv("POPULATOR_QUIET", "true")

	v := Load()
	assert.Equal(t, "/srv/demo_share", v.GetString("out"))
	assert.Equal(t, 250, v.GetInt("count"))
	assert.Equal(t, 3, v.GetInt("depth"))
	assert.True(t, v.GetBool("quiet"))
}

func TestLoadSeedFromEnvironment(t *testing.T) {
	t.Setenv("POPULATOR_SEED", "1234")

	v := Load()
	require.True(t, v.IsSet("seed"))
	assert.Equal(t, int64(1234), v.GetInt64("seed"))
}
