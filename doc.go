// Package giftswap pairs the participants of a gift exchange: everyone gives
// exactly one gift to someone else, and the pairing favours givers who can
// offer what their receiver asked for.
//
// 🚀 What is in the box?
//
//	A small, dependency-light toolkit:
//		• participant: immutable people with give/receive category sets,
//		  JSON roster decoding and the "<giver> -> <receiver>" rendering
//		• allocator: compatibility scoring with a concurrent-safe cache and a
//		  randomized local-search engine over self-free permutations
//		• cmd/giftswap: a CLI reading a roster and printing the pairs
//
// ✨ Why this shape?
//
//   - Deterministic – a seed fully determines the result, even with parallel restarts
//   - Strict – sentinel errors for every invalid input; no panics on user data
//   - Honest – a heuristic: good pairings fast, no optimality claim
//
// Quick start:
//
//	roster := participant.Demo()
//	allocs, err := allocator.Allocate(roster, allocator.DefaultOptions())
//	if err != nil {
//	  log.Fatal(err)
//	}
//	for _, a := range allocs {
//	  fmt.Println(a) // e.g. "baz -> qux"
//	}
//
//	go install github.com/katalvlaran/giftswap/cmd/giftswap@latest
package giftswap
