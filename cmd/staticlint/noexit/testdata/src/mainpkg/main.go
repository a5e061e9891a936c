package main

import (
	"fmt"
	sys "os"
)

func init() {
	if len(sys.Args) > 5 {
		sys.Exit(2) // want "вызов os.Exit в функции init запрещён"
	}
}

func main() {
	defer fmt.Println("bye")
	sys.Exit(1) // want "вызов os.Exit в функции main запрещён"
}

func fail() {
	sys.Exit(1)
}
