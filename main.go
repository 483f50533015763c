package main

import "seekfs/internal/app"

func main() {
	app.Run()
}
