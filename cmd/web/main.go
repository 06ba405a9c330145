package main

import "kennel_backend/internal/app"

func main() {
	app.Run()
}
