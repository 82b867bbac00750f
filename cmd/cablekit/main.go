// Package main provides the cablekit CLI for validating and inspecting
// cable design documents.
package main

func main() {
	Execute()
}
