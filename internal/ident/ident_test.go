package ident

import (
	"sync"
	"testing"
)

func TestNextContinuesFromSeed(t *testing.T) {
	g := NewGenerator(10)
	if got := g.Next(); got != "11" {
		t.Fatalf("expected first id 11, got %s", got)
	}
	if got := g.Next(); got != "12" {
		t.Fatalf("expected second id 12, got %s", got)
	}
}

func TestNextIsUniqueUnderConcurrency(t *testing.T) {
	g := NewGenerator(0)

	const workers = 16
	const perWorker = 200

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- g.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d identifiers, got %d", workers*perWorker, len(seen))
	}
}

func TestParseNumericSkipsForeignIdentifiers(t *testing.T) {
	if got := ParseNumeric("42"); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseNumeric("itm-42"); got != 0 {
		t.Fatalf("expected 0 for non-numeric id, got %d", got)
	}
	if got := ParseNumeric("-7"); got != 0 {
		t.Fatalf("expected 0 for negative id, got %d", got)
	}
}
