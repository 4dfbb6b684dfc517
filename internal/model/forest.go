// Package model implements the ensemble regression used to value
// domains: bagged decision trees over bootstrap resamples of a fixed
// training set. The model is trained once at startup and is read-only
// at inference time, so concurrent Predict calls are safe.
package model

import (
	"fmt"
	"math/rand"

	"domainsight/internal/domain"
)

const (
	// DefaultTrees is the ensemble size.
	DefaultTrees = 100
	// DefaultSeed makes training reproducible across restarts.
	DefaultSeed = 42
	// DefaultMinLeaf stops splitting nodes below this sample count.
	DefaultMinLeaf = 3
)

// Config controls ensemble training. Seed and tree count are explicit
// configuration so predictions stay comparable across deployments;
// note that tree-building tie-breaks may still differ across
// implementations, so cross-port comparisons use tolerances, not
// bit-exact equality.
type Config struct {
	Trees   int
	Seed    int64
	MinLeaf int
}

func (c Config) withDefaults() Config {
	if c.Trees <= 0 {
		c.Trees = DefaultTrees
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.MinLeaf <= 0 {
		c.MinLeaf = DefaultMinLeaf
	}
	return c
}

// Forest is a trained bagging ensemble of regression trees.
type Forest struct {
	trees []*node
	arity int
	cfg   Config
}

// Train fits the ensemble on the given samples. Each tree trains on a
// bootstrap resample (with replacement, same size as the training set)
// drawn from a rand source seeded with cfg.Seed, so the learned
// structure is identical across process restarts.
func Train(samples []domain.TrainingSample, cfg Config) (*Forest, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("model: empty training set")
	}
	cfg = cfg.withDefaults()

	rows := make([][]float64, len(samples))
	labels := make([]float64, len(samples))
	for i, s := range samples {
		row := make([]float64, len(s.Features))
		copy(row, s.Features[:])
		rows[i] = row
		labels[i] = s.Score
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	trees := make([]*node, cfg.Trees)
	for t := range trees {
		trees[t] = buildTree(bootstrap(rows, labels, rng), cfg.MinLeaf)
	}

	return &Forest{
		trees: trees,
		arity: len(rows[0]),
		cfg:   cfg,
	}, nil
}

// Predict returns the mean prediction of all trees for the given
// feature slice. The caller contract guarantees exactly arity features
// in the fixed order [length, hasKeyword, tldRarity, txnHistory,
// expiryDays]; any other length is a precondition violation.
func (f *Forest) Predict(features []float64) (float64, error) {
	if len(features) != f.arity {
		return 0, fmt.Errorf("%w: got %d features, want %d",
			domain.ErrFeatureArity, len(features), f.arity)
	}

	sum := 0.0
	for _, tree := range f.trees {
		sum += tree.predict(features)
	}
	return sum / float64(len(f.trees)), nil
}

// Trees returns the ensemble size.
func (f *Forest) Trees() int { return len(f.trees) }

// Seed returns the seed the ensemble was trained with.
func (f *Forest) Seed() int64 { return f.cfg.Seed }

// bootstrap draws a with-replacement resample of the training set,
// same size as the original.
func bootstrap(rows [][]float64, labels []float64, rng *rand.Rand) dataset {
	n := len(rows)
	ds := dataset{
		rows:   make([][]float64, n),
		labels: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		pick := rng.Intn(n)
		ds.rows[i] = rows[pick]
		ds.labels[i] = labels[pick]
	}
	return ds
}
