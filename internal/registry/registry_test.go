package registry

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestOrderPreserved(t *testing.T) {
	r := New()
	r.Add("first", "function a() {}")
	r.Add("second", "function b() {}")
	r.Add("third", "function c() {}")

	js := r.JS()
	ia := strings.Index(js, "function a")
	ib := strings.Index(js, "function b")
	ic := strings.Index(js, "function c")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Fatalf("fragments out of order:\n%s", js)
	}
}

func TestFragmentsSnapshot(t *testing.T) {
	r := New()
	r.Add("a", "1")
	snap := r.Fragments()
	r.Add("b", "2")
	if len(snap) != 1 {
		t.Fatalf("snapshot grew: %d", len(snap))
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestConcurrentAdd(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Add(fmt.Sprintf("frag%d", i), "x")
		}(i)
	}
	wg.Wait()
	if r.Len() != 16 {
		t.Fatalf("lost fragments: %d", r.Len())
	}
}
