package main

import "github.com/paologalligit/seatrank/cmd"

func main() {
	cmd.Execute()
}
