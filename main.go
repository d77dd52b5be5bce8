package main

import "github.com/frahmantamala/hr-dashboard/cmd"

func main() {
	cmd.Execute()
}
