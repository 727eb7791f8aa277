// Package patterns is a collection of small, narrated design pattern demos,
// one package per pattern, plus a tree traversal engine behind the Iterator demo.
//
// What is inside?
//
//	fstree/    File / Directory tree model, the Iterator contract, YAML loading
//	dfs/       depth-first (pre-order, LIFO frontier) iterator and Walk
//	bfs/       breadth-first (level-order, FIFO frontier) iterator and Walk
//	iterator/  prints both traversals of a tree
//	adapter/   AudioPlayer playing VLC through a MediaAdapter
//	builder/   Director driving gaming and workstation ComputerBuilders
//	facade/    SmartHome scenes over light, thermostat and security system
//	factory/   pizza stores as factory methods
//	pubsub/    StockMarket notifying investors (observer)
//	singleton/ one explicitly initialized process-wide Logger
//	strategy/  PaymentContext with credit card and PayPal strategies
//
// Every demo package exposes Demo(w io.Writer) error, which prints a fixed
// narration. The patterns command (cmd/patterns) runs them:
//
//	patterns iterator
//	patterns all
//
// Quick tree example:
//
//	root
//	├── file1.txt
//	├── file2.txt
//	└── subDir1
//	    ├── file3.txt
//	    └── subDir2
//
// walked depth-first and breadth-first prints the same six names here,
// because only subDir1 has children.
package patterns
