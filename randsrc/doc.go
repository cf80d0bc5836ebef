// Package randsrc provides explicit, seeded, splittable random-bit sources
// for reproducible sampling.
//
// 🚀 What is randsrc?
//
//	A thin, deterministic layer over math/rand/v2's PCG generator:
//	  • New(seed) — the same seed always yields the same stream
//	  • Split()   — derive an independent child stream from a parent
//	  • Float64() / Uint64() — primitive draws
//
// ✨ Why explicit sources?
//
//   - Reproducibility – simulations and tests replay bit-for-bit
//   - Independence – Split gives each consumer its own stream instead of
//     interleaving draws on a shared generator
//   - No global state – nothing in this package touches a process-wide
//     generator; the caller owns every Source it creates
//
// Splitting discipline: distinct sampling call sites should receive
// distinct Sources (via Split) rather than sharing one. Sharing a Source
// across call sites is allowed but couples their draw sequences.
//
// ⚙️ Usage:
//
//	root := randsrc.New(42)
//	a := root.Split() // stream for component A
//	b := root.Split() // independent stream for component B
//
// A Source is not safe for concurrent use; give each goroutine its own
// Source via Split.
package randsrc
