package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/patterns/bfs"
	"github.com/katalvlaran/patterns/dfs"
	"github.com/katalvlaran/patterns/fstree"
)

// buildTwoLevel returns root{a{a1,a2}, b{b1}}.
func buildTwoLevel() *fstree.Directory {
	return fstree.NewDirectory("root").Add(
		fstree.NewDirectory("a").Add(fstree.NewFile("a1"), fstree.NewFile("a2")),
		fstree.NewDirectory("b").Add(fstree.NewFile("b1")),
	)
}

// buildWide returns a directory with n file children "f0".."f{n-1}",
// each wrapped in its own one-child directory "d0".."d{n-1}".
func buildWide(n int) *fstree.Directory {
	root := fstree.NewDirectory("root")
	for i := 0; i < n; i++ {
		root.Add(fstree.NewDirectory(fmt.Sprintf("d%d", i)).Add(fstree.NewFile(fmt.Sprintf("f%d", i))))
	}
	return root
}

// TestIterator_SampleTree asserts the literal level order of the demo tree.
func TestIterator_SampleTree(t *testing.T) {
	got := fstree.Names(fstree.Collect(bfs.NewIterator(fstree.Sample())))
	want := []string{"root", "file1.txt", "file2.txt", "subDir1", "file3.txt", "subDir2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
}

// TestIterator_LevelOrder checks a tree where BFS and DFS disagree.
func TestIterator_LevelOrder(t *testing.T) {
	got := fstree.Names(fstree.Collect(bfs.NewIterator(buildTwoLevel())))
	if want := []string{"root", "a", "b", "a1", "a2", "b1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
	pre := fstree.Names(fstree.Collect(dfs.NewIterator(buildTwoLevel())))
	if reflect.DeepEqual(got, pre) {
		t.Errorf("BFS and DFS orders should differ on this tree, both %v", got)
	}
}

// TestIterator_SingleNode covers a root with no children.
func TestIterator_SingleNode(t *testing.T) {
	for _, root := range []fstree.Node{fstree.NewFile("only"), fstree.NewDirectory("only")} {
		got := fstree.Collect(bfs.NewIterator(root))
		if len(got) != 1 || got[0] != root {
			t.Errorf("single node %T: got %v; want [only]", root, fstree.Names(got))
		}
	}
}

// TestIterator_Exhausted verifies Next past the end fails and returns no node.
func TestIterator_Exhausted(t *testing.T) {
	it := bfs.NewIterator(fstree.NewDirectory("root"))
	if _, err := it.Next(); err != nil {
		t.Fatalf("first Next: unexpected error %v", err)
	}
	if it.HasNext() {
		t.Fatal("HasNext after draining = true; want false")
	}
	n, err := it.Next()
	if !errors.Is(err, fstree.ErrIteratorExhausted) {
		t.Errorf("Next after end: want ErrIteratorExhausted, got %v", err)
	}
	if n != nil {
		t.Errorf("Next after end returned node %q", n.Name())
	}

	var zero bfs.Iterator
	if _, err := zero.Next(); !errors.Is(err, fstree.ErrIteratorExhausted) {
		t.Errorf("zero Iterator: want ErrIteratorExhausted, got %v", err)
	}
	if _, err := bfs.NewIterator(nil).Next(); !errors.Is(err, fstree.ErrIteratorExhausted) {
		t.Errorf("nil root: want ErrIteratorExhausted, got %v", err)
	}
}

// TestIterator_EmptyDirectories ensures empty containers are terminal.
func TestIterator_EmptyDirectories(t *testing.T) {
	root := fstree.NewDirectory("root").Add(
		fstree.NewDirectory("e1"),
		fstree.NewDirectory("e2").Add(fstree.NewDirectory("e3")),
	)
	got := fstree.Names(fstree.Collect(bfs.NewIterator(root)))
	if want := []string{"root", "e1", "e2", "e3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
}

// TestIterator_VisitCountMatchesTree ensures every node is emitted exactly once.
func TestIterator_VisitCountMatchesTree(t *testing.T) {
	for _, n := range []int{0, 1, 5, 50} {
		root := buildWide(n)
		nodes := fstree.Collect(bfs.NewIterator(root))
		if len(nodes) != fstree.Count(root) {
			t.Errorf("n=%d: visited %d; want %d", n, len(nodes), fstree.Count(root))
		}
		seen := make(map[fstree.Node]bool, len(nodes))
		for _, node := range nodes {
			if seen[node] {
				t.Errorf("n=%d: %s emitted twice", n, node.Name())
			}
			seen[node] = true
		}
	}
}

// TestWalk_Levels checks depths and level grouping.
func TestWalk_Levels(t *testing.T) {
	res, err := bfs.Walk(buildTwoLevel())
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 1, 2, 2, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	want := [][]string{{"root"}, {"a", "b"}, {"a1", "a2", "b1"}}
	if got := res.Levels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Levels = %v; want %v", got, want)
	}
}

// TestWalk_MaxDepth verifies WithMaxDepth for zero, positive, and negative limits.
func TestWalk_MaxDepth(t *testing.T) {
	if res, _ := bfs.Walk(buildTwoLevel(), bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Names(), []string{"root"}) {
		t.Errorf("MaxDepth=0: got %v; want [root]", res.Names())
	}
	if res, _ := bfs.Walk(buildTwoLevel(), bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Names(), []string{"root", "a", "b"}) {
		t.Errorf("MaxDepth=1: got %v; want [root a b]", res.Names())
	}
	if res, _ := bfs.Walk(buildTwoLevel(), bfs.WithMaxDepth(10)); len(res.Order) != 6 {
		t.Errorf("MaxDepth=10: got %v; want all 6 nodes", res.Names())
	}
	if _, err := bfs.Walk(buildTwoLevel(), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_OnVisitError asserts hook errors abort and are wrapped.
func TestWalk_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	res, err := bfs.Walk(buildTwoLevel(), bfs.WithOnVisit(func(name string, _ int) error {
		if name == "b" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("error %q does not name the node", err)
	}
	if want := []string{"root", "a", "b"}; !reflect.DeepEqual(res.Names(), want) {
		t.Errorf("partial Order = %v; want %v", res.Names(), want)
	}
}

// TestWalk_Cancellation verifies that a cancelled context halts the walk.
func TestWalk_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Walk(buildWide(100), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestIterator_ConcurrentSafety ensures independent iterators over one tree do not interfere.
func TestIterator_ConcurrentSafety(t *testing.T) {
	root := buildWide(100)
	want := len(fstree.Collect(bfs.NewIterator(root)))
	counts := make(chan int, 4)
	for i := 0; i < 4; i++ {
		go func() { counts <- len(fstree.Collect(bfs.NewIterator(root))) }()
	}
	for i := 0; i < 4; i++ {
		if got := <-counts; got != want {
			t.Errorf("concurrent run #%d: visited %d; want %d", i, got, want)
		}
	}
}
