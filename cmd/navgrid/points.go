package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdrpinto/navgrid"
)

// parsePoint reads "x,z" into a world point on the ground plane.
func parsePoint(s string) (navgrid.Vec3, error) {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return navgrid.Vec3{}, fmt.Errorf("point %q: want x,z", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return navgrid.Vec3{}, fmt.Errorf("point %q: %w", s, err)
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(zs), 64)
	if err != nil {
		return navgrid.Vec3{}, fmt.Errorf("point %q: %w", s, err)
	}
	return navgrid.Vec3{X: x, Z: z}, nil
}

func summarize(results []navgrid.Result, elapsed time.Duration) string {
	found, waypoints, expanded := 0, 0, 0
	for _, r := range results {
		expanded += r.Expanded
		if r.Found {
			found++
			waypoints += len(r.Path)
		}
	}
	return fmt.Sprintf("%d queries, %d found, %d waypoints, %d expansions in %v\n",
		len(results), found, waypoints, expanded, elapsed)
}
