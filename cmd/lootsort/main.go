// Command lootsort computes a Bethesda-plugin load order from a set of
// plugin fixtures plus masterlist/userlist metadata.
package main

func main() {
	Execute()
}
