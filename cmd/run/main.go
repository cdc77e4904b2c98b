// Command run executes a WASI preview1 command module and maps its outcome to
// the process exit status.
package main

func main() {
	Execute()
}
