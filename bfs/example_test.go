package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/patterns/bfs"
	"github.com/katalvlaran/patterns/fstree"
)

// ExampleNewIterator walks the sample tree level by level.
func ExampleNewIterator() {
	it := bfs.NewIterator(fstree.Sample())
	for it.HasNext() {
		n, err := it.Next()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(n.Name())
	}
	// Output:
	// root
	// file1.txt
	// file2.txt
	// subDir1
	// file3.txt
	// subDir2
}

// ExampleWalk groups a project tree by level.
func ExampleWalk() {
	root := fstree.NewDirectory("project").Add(
		fstree.NewDirectory("cmd").Add(fstree.NewFile("main.go")),
		fstree.NewDirectory("docs"),
		fstree.NewFile("go.mod"),
	)
	res, err := bfs.Walk(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for depth, names := range res.Levels() {
		fmt.Println(depth, names)
	}
	// Output:
	// 0 [project]
	// 1 [cmd docs go.mod]
	// 2 [main.go]
}
