package main

import "github.com/fenceai/s3kit/cmd"

func main() {
	cmd.Execute()
}
