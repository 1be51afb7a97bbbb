package main

import "github.com/Manu343726/mipsdecode/cmd"

func main() {
	cmd.Execute()
}
