package cmd

import (
	"testing"
	"time"

	"github.com/mj1618/menucli/internal/menu"
)

func TestMCPTreeCacheHit(t *testing.T) {
	roots := &stubRoots{}
	cache := newMCPTreeCache(time.Hour)

	for i := 0; i < 3; i++ {
		if _, err := cache.readTree(roots, 1, menu.TreeOptions{}); err != nil {
			t.Fatalf("readTree: %v", err)
		}
	}
	if roots.menuBarCalls != 1 {
		t.Errorf("menu bar reads = %d, want 1 (cached)", roots.menuBarCalls)
	}
}

func TestMCPTreeCacheDisabled(t *testing.T) {
	roots := &stubRoots{}
	cache := newMCPTreeCache(0)

	for i := 0; i < 2; i++ {
		if _, err := cache.readTree(roots, 1, menu.TreeOptions{}); err != nil {
			t.Fatalf("readTree: %v", err)
		}
	}
	if roots.menuBarCalls != 2 {
		t.Errorf("menu bar reads = %d, want 2 (ttl 0 bypasses cache)", roots.menuBarCalls)
	}
}

func TestMCPTreeCacheKeyedByOptions(t *testing.T) {
	roots := &stubRoots{}
	cache := newMCPTreeCache(time.Hour)

	if _, err := cache.readTree(roots, 1, menu.TreeOptions{MaxDepth: 1}); err != nil {
		t.Fatalf("readTree: %v", err)
	}
	if _, err := cache.readTree(roots, 1, menu.TreeOptions{MaxDepth: 2}); err != nil {
		t.Fatalf("readTree: %v", err)
	}
	if _, err := cache.readTree(roots, 1, menu.TreeOptions{MaxDepth: 1, IncludeAlternates: true}); err != nil {
		t.Fatalf("readTree: %v", err)
	}
	if roots.menuBarCalls != 3 {
		t.Errorf("menu bar reads = %d, want 3 (distinct option keys)", roots.menuBarCalls)
	}
}

func TestMCPTreeCacheInvalidatePID(t *testing.T) {
	roots := &stubRoots{}
	cache := newMCPTreeCache(time.Hour)

	cache.readTree(roots, 1, menu.TreeOptions{})
	cache.readTree(roots, 2, menu.TreeOptions{})
	if roots.menuBarCalls != 2 {
		t.Fatalf("menu bar reads = %d, want 2", roots.menuBarCalls)
	}

	cache.invalidatePID(1)

	cache.readTree(roots, 1, menu.TreeOptions{})
	if roots.menuBarCalls != 3 {
		t.Errorf("menu bar reads = %d, want 3 after invalidating pid 1", roots.menuBarCalls)
	}
	cache.readTree(roots, 2, menu.TreeOptions{})
	if roots.menuBarCalls != 3 {
		t.Errorf("menu bar reads = %d, want pid 2 entry untouched", roots.menuBarCalls)
	}
}

func TestMCPTreeCacheInvalidateAll(t *testing.T) {
	roots := &stubRoots{}
	cache := newMCPTreeCache(time.Hour)

	cache.readTree(roots, 1, menu.TreeOptions{})
	cache.readTree(roots, 2, menu.TreeOptions{})
	cache.invalidateAll()
	cache.readTree(roots, 1, menu.TreeOptions{})
	cache.readTree(roots, 2, menu.TreeOptions{})

	if roots.menuBarCalls != 4 {
		t.Errorf("menu bar reads = %d, want 4 after full invalidation", roots.menuBarCalls)
	}
}
