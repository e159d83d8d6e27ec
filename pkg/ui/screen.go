package ui

import "fmt"

// ClearScreen moves the cursor home and clears the display.
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
