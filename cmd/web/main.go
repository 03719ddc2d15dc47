package main

import "reclamos_backend/internal/app"

func main() {
	app.Run()
}
