package main

import "github.com/cakirmemati3-ui/video-backend/cmd"

func main() {
	cmd.Execute()
}
