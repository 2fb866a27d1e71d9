package main

import "nathanbeddoewebdev/envaudit/cmd"

func main() {
	cmd.Execute()
}
