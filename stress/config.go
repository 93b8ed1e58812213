package stress

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	workloadsKey   = "workloads"
	opsKey         = "ops"
	keysKey        = "keys"
	removeRatioKey = "remove-ratio"
	seedKey        = "seed"
	concurrencyKey = "concurrency"
	nodeLimitKey   = "node-limit"
	checkEveryKey  = "check-every"
)

// Config is the config.Binder for the parameters of a
// stress run
type Config struct {
	Workloads   int
	Ops         int
	Keys        int
	RemoveRatio float64
	Seed        int64
	Concurrency int
	NodeLimit   int
	CheckEvery  int
}

// Bind implementation of config.Binder for Config
func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.Int(workloadsKey, 8, "number of workloads to run")
	flags.Int(opsKey, 100000, "number of operations per workload")
	flags.Int(keysKey, 4096, "size of the key space of each workload")
	flags.Float64(removeRatioKey, 0.3, "share of the operations that are removals")
	flags.Int64(seedKey, 1, "seed of the first workload, the following ones use the next seeds")
	flags.Int(concurrencyKey, defaultConcurrency, "number of workloads run in parallel")
	flags.Int(nodeLimitKey, 0, "maximum number of nodes per tree, 0 for no limit")
	flags.Int(checkEveryKey, defaultCheckEvery, "number of operations between two complete checks of a tree")
	return nil
}

// Configure implementation of config.Binder for Config
func (c *Config) Configure(v *viper.Viper) error {
	c.Workloads = v.GetInt(workloadsKey)
	c.Ops = v.GetInt(opsKey)
	c.Keys = v.GetInt(keysKey)
	c.RemoveRatio = v.GetFloat64(removeRatioKey)
	c.Seed = v.GetInt64(seedKey)
	c.Concurrency = v.GetInt(concurrencyKey)
	c.NodeLimit = v.GetInt(nodeLimitKey)
	c.CheckEvery = v.GetInt(checkEveryKey)

	switch {
	case c.Workloads <= 0:
		return errors.Errorf("%s must be positive, got %d", workloadsKey, c.Workloads)
	case c.Ops < 0:
		return errors.Errorf("%s cannot be negative, got %d", opsKey, c.Ops)
	case c.Keys <= 0:
		return errors.Errorf("%s must be positive, got %d", keysKey, c.Keys)
	case c.RemoveRatio < 0 || c.RemoveRatio > 1:
		return errors.Errorf("%s must be within [0, 1], got %f", removeRatioKey, c.RemoveRatio)
	}

	return nil
}

// Build returns the workloads described by the configuration
func (c *Config) Build() []Workload {
	workloads := make([]Workload, c.Workloads)
	for i := range workloads {
		workloads[i] = Workload{
			ID:          i,
			Seed:        c.Seed + int64(i),
			Ops:         c.Ops,
			Keys:        c.Keys,
			RemoveRatio: c.RemoveRatio,
			NodeLimit:   c.NodeLimit,
			CheckEvery:  c.CheckEvery,
		}
	}

	return workloads
}
