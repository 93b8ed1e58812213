package stress

import (
	"testing"

	"github.com/eaugeas/ordtree/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	stress *Config
}

func (c testConfig) Use() string              { return "stress" }
func (c testConfig) EnvPrefix() string        { return "ORDTREE_STRESS_TEST" }
func (c testConfig) Binders() []config.Binder { return []config.Binder{c.stress} }

func parse(t *testing.T, args ...string) (*Config, error) {
	c := &Config{}
	p, err := config.Generate(testConfig{stress: c})
	require.NoError(t, err)
	return c, p.Parse(args)
}

func TestConfigDefaults(t *testing.T) {
	c, err := parse(t)

	assert.Nil(t, err)
	assert.Equal(t, 8, c.Workloads)
	assert.Equal(t, 100000, c.Ops)
	assert.Equal(t, 4096, c.Keys)
	assert.Equal(t, 0.3, c.RemoveRatio)
	assert.Equal(t, int64(1), c.Seed)
	assert.Equal(t, defaultConcurrency, c.Concurrency)
	assert.Equal(t, 0, c.NodeLimit)
	assert.Equal(t, defaultCheckEvery, c.CheckEvery)
}

func TestConfigBuild(t *testing.T) {
	c, err := parse(t, "--workloads", "3", "--seed", "10", "--node-limit", "50")
	require.NoError(t, err)

	workloads := c.Build()

	assert.Len(t, workloads, 3)
	for i, w := range workloads {
		assert.Equal(t, i, w.ID)
		assert.Equal(t, int64(10+i), w.Seed)
		assert.Equal(t, 50, w.NodeLimit)
	}
}

func TestConfigInvalid(t *testing.T) {
	_, err := parse(t, "--workloads", "0")
	assert.NotNil(t, err)

	_, err = parse(t, "--remove-ratio", "1.5")
	assert.NotNil(t, err)

	_, err = parse(t, "--keys=-1")
	assert.NotNil(t, err)
}

func TestConfigUnderscoreFlags(t *testing.T) {
	c, err := parse(t, "--remove_ratio", "0.5", "--check_every", "10")
	require.NoError(t, err)

	assert.Equal(t, 0.5, c.RemoveRatio)
	assert.Equal(t, 10, c.CheckEvery)
}
