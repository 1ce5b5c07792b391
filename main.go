package main

import "github.com/carlosmariath/painel-clinica-sub001/cmd"

func main() {
	cmd.Execute()
}
