package fstree

// Sample builds the fixed demo tree:
//
//	root
//	├── file1.txt
//	├── file2.txt
//	└── subDir1
//	    ├── file3.txt
//	    └── subDir2
func Sample() *Directory {
	subDir1 := NewDirectory("subDir1").Add(
		NewFile("file3.txt"),
		NewDirectory("subDir2"),
	)

	return NewDirectory("root").Add(
		NewFile("file1.txt"),
		NewFile("file2.txt"),
		subDir1,
	)
}
