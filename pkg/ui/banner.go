// Package ui owns everything the operator sees around the process table:
// the wordmark, the help screen, and terminal state for interactive runs.
package ui

import "strings"

const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	emberRed  = "\033[38;5;203m"
	amber     = "\033[38;5;214m"
	gold      = "\033[38;5;220m"
	leafGreen = "\033[38;5;114m"
	skyBlue   = "\033[38;5;75m"
	slateBlue = "\033[38;5;68m"
	orchid    = "\033[38;5;176m"
)

// Banner renders a colored proctop wordmark.
func Banner() string {
	var b strings.Builder

	letters := [][]string{
		{"██████╗ ", "██╔══██╗", "██████╔╝", "██╔═══╝ ", "██║     ", "╚═╝     "},
		{"██████╗ ", "██╔══██╗", "██████╔╝", "██╔══██╗", "██║  ██║", "╚═╝  ╚═╝"},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{" ██████╗", "██╔════╝", "██║     ", "██║     ", "╚██████╗", " ╚═════╝"},
		{"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{"██████╗ ", "██╔══██╗", "██████╔╝", "██╔═══╝ ", "██║     ", "╚═╝     "},
	}
	gradient := []string{emberRed, amber, gold, leafGreen, skyBlue, slateBlue, orchid}

	rows := make([]string, len(letters[0]))
	for i, letter := range letters {
		color := gradient[i%len(gradient)]
		for row := 0; row < len(letter); row++ {
			rows[row] += color + letter[row] + " "
		}
	}
	for _, line := range rows {
		b.WriteString(bold + line + reset + "\n")
	}

	b.WriteString("\n")
	b.WriteString(bold + amber + "proctop" + reset + "  •  live process activity\n\n")

	return b.String()
}
