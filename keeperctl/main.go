package main

import "github.com/threefoldfoundation/tft/keeper/keeperctl/cmd"

func main() {
	cmd.Execute()
}
