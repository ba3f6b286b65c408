// Package pareto identifies the non-dominated points of a two-dimensional
// score set.
//
// Each axis carries its own optimization Direction. A point is on the Pareto
// front when no other point dominates it under the rule selected by the pair
// of directions. Classification is an O(n^2) pairwise scan with no sorting, so
// results are easy to cross-check by brute force.
//
// The mixed-direction rules (one axis maximized, the other minimized) are
// deliberately asymmetric: the maximized axis compares weakly, the minimized
// axis strictly, and there is no "strictly better somewhere" clause. Existing
// plots depend on that exact front shape.
package pareto
