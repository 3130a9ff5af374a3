// Command astrolabe computes natal, Human Design and Zi Wei Dou Shu charts.
package main

import "github.com/papapumpkin/astrolabe/cmd"

func main() {
	cmd.Execute()
}
