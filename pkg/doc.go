// Package pkg holds the libraries behind wordgrid, a search for the words
// hidden in a grid of letters.
//
// # Overview
//
// A word is found when its letters can be read along a path of cells that
// touch horizontally, vertically or diagonally, visiting no cell twice. The
// pkg directory is organized bottom-up:
//
//  1. [grid] - Board shape, neighbor order and paths
//  2. [dict] - The word lookup capability and its implementations
//  3. [search] - The depth-first enumeration of words
//  4. [solve] - Options, dictionary selection and cached runs
//  5. [cache] - Result caches (memory, file, Redis, MongoDB)
//
// # Architecture
//
// The typical data flow through wordgrid:
//
//	config file / flags / HTTP request
//	         ↓
//	    [solve] package (validate options, build board and dictionary)
//	         ↓
//	    [cache] package (reuse an earlier result)
//	         ↓
//	    [search] package (walk the board)
//	         ↓
//	    word list, JSON, or a drawn path
//
// # Quick Start
//
//	b := grid.Reference()
//	words := search.All(b, dict.NewTrie(dict.Common()))
//	fmt.Println(len(words)) // 22
//
// With caching:
//
//	runner := solve.NewRunner(cache.NewMemoryCache(), nil, nil)
//	res, err := runner.Solve(ctx, solve.Options{Rows: []string{"kno", "iop"}})
//
// # Supporting Packages
//
// [config] - TOML configuration file.
//
// [errors] - Coded errors and input validation shared by every layer.
//
// [observability] - Hooks for solve, cache and HTTP events.
//
// [render/pathviz] - Graphviz drawings of a path on the board.
//
// [selfcheck] - Known answers on the reference board.
//
// [buildinfo] - Version information stamped at build time.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/grid
// [dict]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/dict
// [search]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/search
// [solve]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/solve
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/observability
// [render/pathviz]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/render/pathviz
// [selfcheck]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/selfcheck
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordgrid/pkg/buildinfo
package pkg
