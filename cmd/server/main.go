package main

import "fashionai/go_backend/internal/app"

func main() {
	app.Run()
}
