package main

import (
	"os"

	"golang.org/x/term"
)

type terminalReport struct {
	Detected *terminalSize   `json:"detected,omitempty"`
	Probes   []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminals checks the standard descriptors in order. The first one that
// is a terminal with a readable size becomes Detected.
func probeTerminals() terminalReport {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}

	report := terminalReport{Probes: make([]terminalProbe, 0, len(files))}
	for i, f := range files {
		probe := terminalProbe{Name: names[i]}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			default:
				probe.Width, probe.Height = width, height
				if report.Detected == nil {
					report.Detected = &terminalSize{Source: probe.Name, Width: width, Height: height}
				}
			}
		}
		report.Probes = append(report.Probes, probe)
	}
	return report
}
