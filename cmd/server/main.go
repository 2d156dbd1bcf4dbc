package main

import "buildops/internal/app/server"

func main() {
	server.Run()
}
