package main

import "os"

// main is the entry point of gcmt. Execute runs the bootstrap defined in
// root.go and its result becomes the process exit status.
func main() {
	os.Exit(Execute())
}
