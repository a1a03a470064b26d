// Package main runs displays on simulated DSI hardware.
package main

import "github.com/sarchlab/dsidisplay/dsisim/cmd"

func main() {
	cmd.Execute()
}
