// Package memetic searches for short closed tours over a set of cities with a
// memetic (hybrid) genetic algorithm: every generation each individual is
// improved by local search and the improved genome replaces the original.
//
// 🚀 What is in the box?
//
//	• matrix/   - Dense storage and validators for the cost table
//	• tsp/      - Distances, Tour, Instance, swap hill climbing, 2-opt,
//	              exhaustive search and Held–Karp baselines, seeded RNG
//	• genetic/  - Population, ranked/tournament selection, PMX crossover,
//	              insertion mutation, (μ+λ) truncation, the Engine, RunMany
//	• config/   - genetic.Options from YAML/JSON/TOML, env and .env files
//	• metrics/  - Prometheus observer for engine progress
//	• builder/  - Euclidean, circle, ring and random instances with known optima
//
// ✨ Guarantees
//
//   - Reproducible: a fixed seed reproduces the whole run, with or without
//     parallel local search.
//   - Safe tours: every Tour is a validated permutation whose cost is
//     recomputed on every edit.
//   - Read-only inputs: the distance table is copied once and never mutated.
//
// Quick start:
//
//	m, _ := matrix.NewDenseFromRows(rows)
//	inst, _ := tsp.NewInstance(names, m)
//	opts, _ := config.Load("memetic.yaml")
//	eng, _ := genetic.New(inst.Distances(), opts)
//	res, _ := eng.Run(ctx)
//	route, _ := inst.Route(res.Best)
//
// Logging goes through the klog/logr logger carried by ctx; Run also opens an
// OpenTelemetry span per run and per generation.
package memetic
