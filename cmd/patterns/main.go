// Command patterns runs the narrated design pattern demos.
//
//	patterns iterator
//	patterns iterator --tree tree.yaml
//	patterns all --debug
package main

import "github.com/katalvlaran/patterns/internal/cli"

func main() {
	cli.Execute()
}
