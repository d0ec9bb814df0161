package main

import "caldav-bridge/cmd"

func main() {
	cmd.Execute()
}
