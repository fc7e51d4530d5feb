package main

import "github.com/dbsmedya/lakesync/cmd/lakesync/cmd"

func main() {
	cmd.Execute()
}
