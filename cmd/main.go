package main

import "pomodoro/cmd/root"

func main() {
	root.Execute()
}
