package main

import "github.com/piwi3910/budomari/cmd/budomari/commands"

func main() {
	commands.Execute()
}
