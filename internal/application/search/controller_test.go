package search

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestControllerDebouncesToFinalValue(t *testing.T) {
	var mu sync.Mutex
	var queries []string
	published := make(chan Result, 1)

	c := NewControllerQuiet(Deps{
		Fetch: func(ctx context.Context, query string) ([]Candidate, error) {
			mu.Lock()
			queries = append(queries, query)
			mu.Unlock()
			return []Candidate{{ID: "e1", Nome: "Trilha noturna"}}, nil
		},
		Publish: func(r Result) { published <- r },
	}, 30*time.Millisecond)
	defer c.Close()

	ctx := context.Background()
	c.SetQuery(ctx, "tr")
	c.SetQuery(ctx, "tri")
	c.SetQuery(ctx, "tril")

	select {
	case r := <-published:
		if r.Query != "tril" {
			t.Fatalf("expected final query, got %q", r.Query)
		}
		if len(r.Candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(r.Candidates))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result published")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(queries) != 1 || queries[0] != "tril" {
		t.Fatalf("expected exactly one lookup for the final value, got %v", queries)
	}
}

func TestControllerShortQueryClearsWithoutFetch(t *testing.T) {
	fetched := false
	published := make(chan Result, 2)

	c := NewControllerQuiet(Deps{
		Fetch: func(ctx context.Context, query string) ([]Candidate, error) {
			fetched = true
			return []Candidate{{ID: "e1", Nome: "Trilha"}}, nil
		},
		Publish: func(r Result) { published <- r },
	}, 10*time.Millisecond)
	defer c.Close()

	ctx := context.Background()
	c.SetQuery(ctx, "tr")
	<-published // first lookup settles

	c.SetQuery(ctx, "t")
	r := <-published
	if len(r.Candidates) != 0 {
		t.Fatalf("short query must clear results, got %d candidates", len(r.Candidates))
	}
	if len(c.Candidates()) != 0 {
		t.Fatal("stored candidates not cleared")
	}

	fetched = false
	c.SetQuery(ctx, "")
	<-published
	if fetched {
		t.Fatal("empty query must not fetch")
	}
}

func TestControllerDiscardsStaleResult(t *testing.T) {
	release := map[string]chan struct{}{
		"cach": make(chan struct{}),
		"cacho": make(chan struct{}),
	}
	started := make(chan string, 2)
	published := make(chan Result, 2)

	c := NewControllerQuiet(Deps{
		Fetch: func(ctx context.Context, query string) ([]Candidate, error) {
			started <- query
			<-release[query]
			return []Candidate{{ID: query, Nome: query}}, nil
		},
		Publish: func(r Result) { published <- r },
	}, 5*time.Millisecond)
	defer c.Close()

	ctx := context.Background()
	c.SetQuery(ctx, "cach")
	if q := <-started; q != "cach" {
		t.Fatalf("unexpected first lookup %q", q)
	}

	// A keystroke arrives while the first lookup is in flight.
	c.SetQuery(ctx, "cacho")
	if q := <-started; q != "cacho" {
		t.Fatalf("unexpected second lookup %q", q)
	}

	// The older lookup settles last-wins-wrong order: release it first.
	close(release["cach"])
	time.Sleep(20 * time.Millisecond)
	close(release["cacho"])

	r := <-published
	if r.Query != "cacho" {
		t.Fatalf("stale result leaked through: %q", r.Query)
	}
	select {
	case r := <-published:
		t.Fatalf("unexpected second publish: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}
	if got := c.Candidates(); len(got) != 1 || got[0].ID != "cacho" {
		t.Fatalf("stored candidates wrong: %+v", got)
	}
}

func TestMatchNome(t *testing.T) {
	tests := []struct {
		nome, query string
		want        bool
	}{
		{"Trilha da Pedra Grande", "pedra", true},
		{"Trilha da Pedra Grande", "PEDRA", true},
		{"Trilha da Pedra Grande", "  pedra ", true},
		{"Cachoeira Azul", "pedra", false},
		{"Cachoeira Azul", "", true},
	}
	for _, tt := range tests {
		if got := MatchNome(tt.nome, tt.query); got != tt.want {
			t.Errorf("MatchNome(%q, %q) = %v, want %v", tt.nome, tt.query, got, tt.want)
		}
	}
}
