package browse_test

import (
	"context"
	"sync"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/browse"
	"github.com/fwojciec/docview/mock"
	"github.com/fwojciec/docview/yaml"
)

// payloads is a documentation set with two libraries. In dart:core,
// String extends Object and implements Comparable and Pattern, and
// Runes extends Iterable. Ping and Pong extend each other.
// dart:collection's LinkedList extends dart:core's Iterable.
var payloads = map[string]string{
	"library_list.json": `{"libraries": [
		{"name": "dart:core", "qualifiedName": "dart-core"},
		{"name": "dart:collection", "qualifiedName": "dart-collection"}
	]}`,
	"index.json": `{"dart-core": "library", "dart-core.String": "class", "dart-collection.LinkedList": "class"}`,
	"dart-core.json": `{"name": "dart:core", "classes": {"class": [
		{"name": "Object"}, {"name": "String"}, {"name": "Comparable"}, {"name": "Pattern"},
		{"name": "Iterable"}, {"name": "Runes"}, {"name": "Ping"}, {"name": "Pong"}
	]}}`,
	"dart-core.Object.json": `{"methods": {"methods": {"toString": {}}}}`,
	"dart-core.String.json": `{
		"comment": "<p>A string.</p><p>Details.</p>",
		"superclass": "dart-core.Object",
		"implements": ["dart-core.Comparable", "dart-core.Pattern"],
		"variables": {"length": {"comment": "<p>The length.</p>"}},
		"methods": {"methods": {"trim": {}}}
	}`,
	"dart-core.Comparable.json": `{"methods": {"methods": {"compareTo": {}}}}`,
	"dart-core.Pattern.json":    `{"methods": {"methods": {"allMatches": {}}}}`,
	"dart-core.Iterable.json":   `{"variables": {"first": {}}, "methods": {"methods": {"map": {}}}}`,
	"dart-core.Runes.json":      `{"superclass": "dart-core.Iterable", "variables": {"last": {}}}`,
	"dart-core.Ping.json":       `{"superclass": "dart-core.Pong", "methods": {"methods": {"ping": {}}}}`,
	"dart-core.Pong.json":       `{"superclass": "dart-core.Ping", "methods": {"methods": {"pong": {}}}}`,
	"dart-collection.json": `{"name": "dart:collection", "classes": {"class": [{"name": "LinkedList"}]}}`,
	"dart-collection.LinkedList.json": `{"superclass": "dart-core.Iterable"}`,
}

// fetcher serves payloads and counts fetches per path.
type fetcher struct {
	*mock.Fetcher

	mu     sync.Mutex
	counts map[string]int
	fail   map[string]error
}

func newFetcher() *fetcher {
	f := &fetcher{counts: make(map[string]int), fail: make(map[string]error)}
	f.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, path string) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.counts[path]++
			if err := f.fail[path]; err != nil {
				return "", err
			}
			content, ok := payloads[path]
			if !ok {
				return "", docview.Errorf(docview.ENOTFOUND, "no payload at %s", path)
			}
			return content, nil
		},
	}
	return f
}

func (f *fetcher) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[path]
}

func (f *fetcher) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.counts {
		n += c
	}
	return n
}

func (f *fetcher) failWith(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[path] = err
}

func newLoader(f *fetcher) *browse.Loader {
	return browse.NewLoader(f, yaml.NewDecoder(), docview.NewIndex())
}
