// Package testutil provides testing utilities for generational containers.
//
// This package is intended for use in tests and benchmarks only. It generates
// reproducible random operation sequences that tests replay against an arena
// and a simple reference model.
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(1000, testutil.DefaultMix) {
//	    switch op.Kind { ... }
//	}
package testutil
