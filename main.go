package main

import "github.com/gtahidi/chat-import/cmd"

func main() {
	cmd.Execute()
}
