package main

import "contentcraft_backend/internal/app"

func main() {
	app.Run()
}
