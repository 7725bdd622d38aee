package main

import "github.com/Egor213/LogiBoard/internal/app"

func main() {
	app.Run()
}
