package main

import "github.com/frahmantamala/personnel-management/cmd"

func main() {
	cmd.Execute()
}
