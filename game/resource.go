package game

import (
	"fmt"
	"strings"
)

type Resource int

const (
	Grain Resource = iota
	Sheep
	Rock
	Brick
	Wood
	Gold
	ResourceCount int = iota
)

var resourceNames = [...]string{"grain", "sheep", "rock", "brick", "wood", "gold"}

// Resources lists every resource in ledger order.
var Resources = []Resource{Grain, Sheep, Rock, Brick, Wood, Gold}

func (r Resource) String() string {
	if r < 0 || int(r) >= ResourceCount {
		return fmt.Sprintf("resource(%d)", int(r))
	}
	return resourceNames[r]
}

func ParseResource(name string) (Resource, bool) {
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), true
		}
	}
	return 0, false
}

// Cost is a non-negative count per resource, written as a keyed literal: Cost{Brick: 2, Wood: 1}.
type Cost [ResourceCount]int

func (c Cost) Get(r Resource) int {
	return c[r]
}

// Add returns c increased by n units of r.
func (c Cost) Add(r Resource, n int) Cost {
	if n < 0 {
		panic(fmt.Sprintf("cannot add negative amount %d of %s", n, r))
	}
	c[r] += n
	return c
}

// Take returns c decreased by n units of r. Taking more than held is a programming error.
func (c Cost) Take(r Resource, n int) Cost {
	if n < 0 || c[r] < n {
		panic(fmt.Sprintf("cannot take %d %s from %s", n, r, c))
	}
	c[r] -= n
	return c
}

func (c Cost) Plus(o Cost) Cost {
	for i := range c {
		c[i] += o[i]
	}
	return c
}

// Covers reports whether c holds at least o of every resource.
func (c Cost) Covers(o Cost) bool {
	for i := range c {
		if c[i] < o[i] {
			return false
		}
	}
	return true
}

func (c Cost) IsZero() bool {
	return c == Cost{}
}

func (c Cost) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}
	return t
}

func (c Cost) String() string {
	var parts []string
	for _, r := range Resources {
		if c[r] > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", r, c[r]))
		}
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, " ")
}
