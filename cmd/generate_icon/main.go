package main

import (
	"fmt"
	"log"

	"icoforge/pkg/artwork"
)

func main() {
	err := artwork.Generate("icon.png", artwork.DefaultSize)
	if err != nil {
		log.Fatal("Failed to generate icon:", err)
	}
	fmt.Println("Icon generated successfully: icon.png")
}
