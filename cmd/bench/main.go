// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main provides a micro-benchmark driver for the semistable-vector
// container.
//
// This command-line tool runs a configurable number of independent workers,
// each owning its own Vector, performing a mix of pushes, inserts and
// erasures, and reports throughput plus epoch-chain length statistics. It's
// useful for observing the steady-state chain-length bound in practice and
// for capacity/performance sanity checks.
//
// # Usage
//
//	go run cmd/bench/main.go -workers 8 -ops 100000
//
// # Interpreting Results
//
//   - Throughput: operations per second per worker (higher is better)
//   - Chain length: Iterator.DebugChainLen of a Begin() iterator taken after
//     the run. That iterator starts at the worker's current epoch, so the
//     value is always 0; records behind the current epoch that older
//     iterators still hold are not counted
//
// # Thread Safety
//
// Each worker owns an independent Vector; workers never share one, since a
// Vector's mutation is single-producer.
//
// # See Also
//
// For interactive exploration, see cmd/demo.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"time"

	semistable "github.com/joaquintides/semistable-vector"
)

func main() {
	workers := flag.Int("workers", 4, "number of independent workers")
	ops := flag.Int("ops", 200000, "operations per worker")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	fmt.Println("semistable-vector benchmark")
	fmt.Println("===========================")
	fmt.Printf("workers=%d ops=%d\n\n", *workers, *ops)

	var wg sync.WaitGroup
	results := make([]workerResult, *workers)

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results[id] = runWorker(id, *ops, *seed+int64(id))
		}(w)
	}
	wg.Wait()

	for i, r := range results {
		fmt.Printf("worker %d: %d ops in %v (%.0f ops/sec), final len=%d, chain len=%d\n",
			i, r.ops, r.duration, float64(r.ops)/r.duration.Seconds(), r.finalLen, r.chainLen)
	}
}

type workerResult struct {
	ops      int
	duration time.Duration
	finalLen int
	chainLen int
}

func runWorker(id int, ops int, seed int64) workerResult {
	_ = id
	rng := rand.New(rand.NewSource(seed))
	v := semistable.New[int]()

	start := time.Now()
	for i := 0; i < ops; i++ {
		switch {
		case v.Empty() || rng.Intn(10) < 6:
			v.PushBack(rng.Int())
		case rng.Intn(10) < 8:
			pos := v.Iter(rng.Intn(v.Len()))
			v.Insert(pos, rng.Int())
		default:
			pos := v.Iter(rng.Intn(v.Len()))
			v.Erase(pos)
		}
	}
	duration := time.Since(start)

	it := v.Begin()
	return workerResult{
		ops:      ops,
		duration: duration,
		finalLen: v.Len(),
		chainLen: it.DebugChainLen(),
	}
}
