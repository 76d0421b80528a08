package main

import "github.com/dbsmedya/gogeomine/cmd/gogeomine/cmd"

func main() {
	cmd.Execute()
}
