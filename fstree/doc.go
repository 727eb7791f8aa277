// Package fstree defines the in-memory file tree walked by the dfs and bfs
// iterators: the Node capability interface, its two variants File (leaf) and
// Directory (container), and the Iterator contract both traversals satisfy.
//
// What
//
//   - Node exposes a name and a capability query, Children(), which reports
//     whether the node is a container and, if so, its ordered children.
//     Traversal code never type-switches on concrete node types.
//   - Directory keeps children in insertion order; that order is the
//     left-to-right sibling order every traversal honors.
//   - Iterator is the pull-style contract (HasNext / Next) implemented by
//     dfs.Iterator and bfs.Iterator. All adapts any Iterator to iter.Seq.
//   - DecodeYAML / ParseYAML build a tree from a YAML description.
//
// Lifecycle
//
//	A tree is built fully before any traversal starts and is read-only while
//	iterators walk it. Several iterators may walk one tree from different
//	goroutines because nothing writes to it after construction.
//
// Errors
//
//   - ErrIteratorExhausted  Next called on an iterator whose frontier is empty.
//   - ErrEmptyName          a YAML node without a name.
//
// Usage
//
//	root := fstree.NewDirectory("root").Add(
//	    fstree.NewFile("a.txt"),
//	    fstree.NewDirectory("sub").Add(fstree.NewFile("b.txt")),
//	)
//	it := dfs.NewIterator(root)
//	for it.HasNext() {
//	    n, _ := it.Next()
//	    fmt.Println(n.Name())
//	}
package fstree
