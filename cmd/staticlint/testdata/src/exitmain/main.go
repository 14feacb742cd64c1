package main

import (
	"fmt"
	xos "os"
)

type runner struct{}

func (runner) main() {
	xos.Exit(3)
}

func helper() {
	xos.Exit(2)
}

func main() {
	fmt.Println("start")
	defer helper()
	xos.Exit(1) // want "direct call to os.Exit is not allowed in main"
	func() {
		xos.Exit(4) // want "direct call to os.Exit is not allowed in main"
	}()
	runner{}.main()
}
