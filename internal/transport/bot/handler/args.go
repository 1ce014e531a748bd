package handler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// commandArgs returns the text after the command, e.g. "portal 2" for
// "/search portal 2" or "/search@deals_bot portal 2".
func commandArgs(text string) string {
	text = strings.TrimSpace(text)

	i := strings.IndexAny(text, " \t\n")
	if i < 0 {
		return ""
	}

	return strings.TrimSpace(text[i:])
}

// parseBound reads a number in [0, upper]. A decimal comma is accepted.
func parseBound(arg string, upper float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(arg), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	if math.IsNaN(v) || v < 0 || v > upper {
		return 0, fmt.Errorf("%v is out of [0, %v]", v, upper)
	}

	return v, nil
}

// parseIndex reads a 1-based list position.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi: %w", err)
	}

	if n < 1 {
		return 0, fmt.Errorf("position %d is below 1", n)
	}

	return n, nil
}
