package model

import "sort"

// node is a single regression-tree node. Leaves carry the mean label
// of the samples that reached them; internal nodes split on
// feature <= threshold.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
	leaf      bool
}

// dataset is a view over bootstrap rows during tree building.
type dataset struct {
	rows   [][]float64
	labels []float64
}

// buildTree grows a regression tree with variance-reduction splits.
//
// Tie-breaking is deterministic: features are scanned left to right,
// candidate thresholds are midpoints between consecutive sorted values,
// and the first strictly-best split wins.
func buildTree(ds dataset, minLeaf int) *node {
	if len(ds.rows) < minLeaf || constantLabels(ds.labels) {
		return &node{leaf: true, value: mean(ds.labels)}
	}

	feature, threshold, ok := bestSplit(ds)
	if !ok {
		return &node{leaf: true, value: mean(ds.labels)}
	}

	left, right := partition(ds, feature, threshold)
	if len(left.rows) == 0 || len(right.rows) == 0 {
		return &node{leaf: true, value: mean(ds.labels)}
	}

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      buildTree(left, minLeaf),
		right:     buildTree(right, minLeaf),
	}
}

// bestSplit finds the (feature, threshold) pair minimizing the summed
// squared error of the two children. All features are considered at
// every split (max-features = 100%); ensemble diversity comes purely
// from bootstrap resampling.
func bestSplit(ds dataset) (int, float64, bool) {
	arity := len(ds.rows[0])
	bestSSE := sse(ds.labels)
	bestFeature, bestThreshold := -1, 0.0

	for feature := 0; feature < arity; feature++ {
		for _, threshold := range candidateThresholds(ds.rows, feature) {
			var leftLabels, rightLabels []float64
			for i, row := range ds.rows {
				if row[feature] <= threshold {
					leftLabels = append(leftLabels, ds.labels[i])
				} else {
					rightLabels = append(rightLabels, ds.labels[i])
				}
			}
			if len(leftLabels) == 0 || len(rightLabels) == 0 {
				continue
			}
			if total := sse(leftLabels) + sse(rightLabels); total < bestSSE {
				bestSSE = total
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

// candidateThresholds returns midpoints between consecutive distinct
// values of a feature, in ascending order.
func candidateThresholds(rows [][]float64, feature int) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[feature])
	}
	sort.Float64s(values)

	thresholds := make([]float64, 0, len(values))
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			thresholds = append(thresholds, (values[i]+values[i-1])/2)
		}
	}
	return thresholds
}

func partition(ds dataset, feature int, threshold float64) (dataset, dataset) {
	var left, right dataset
	for i, row := range ds.rows {
		if row[feature] <= threshold {
			left.rows = append(left.rows, row)
			left.labels = append(left.labels, ds.labels[i])
		} else {
			right.rows = append(right.rows, row)
			right.labels = append(right.labels, ds.labels[i])
		}
	}
	return left, right
}

func (n *node) predict(features []float64) float64 {
	for !n.leaf {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sse is the sum of squared errors around the mean.
func sse(values []float64) float64 {
	m := mean(values)
	total := 0.0
	for _, v := range values {
		d := v - m
		total += d * d
	}
	return total
}

func constantLabels(labels []float64) bool {
	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[0] {
			return false
		}
	}
	return true
}
