// Command cxxmangle produces and rewrites Itanium C++ ABI symbol names.
package main

import "os"

func main() {
	if err := newApp().execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
