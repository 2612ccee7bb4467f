package main

import (
	"github.com/patriotcart/savings-api/cmd"
)

func main() {
	cmd.Execute()
}
