// Command branchdemo runs a handful of branchy functions through
// branchtest.RunFunc and prints how many runs each one took, to
// exercise the engine outside of go test. With -v it also logs the
// selectors of every run.
package main

import (
	"flag"
	"fmt"

	"github.com/google/gops/agent"
	log "github.com/sirupsen/logrus"

	"github.com/freqmod/gobranches/branchtest"
)

func main() {
	// Do NOT turn on agent.ShutdownCleanup here: this demo can be
	// attached to mid-enumeration with a large branch product, and the
	// installed signal handler calling os.Exit would skip the final
	// run-count summary below.
	if err := agent.Listen(agent.Options{}); err != nil {
		log.Printf("Could not start gops agent: %v", err)
	}

	verbose := flag.Bool("v", false, "Log every branch-start and branch-end")
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	for _, scenario := range scenarios {
		runs := 0
		branchtest.RunFunc(func(c *branchtest.Case, state any) {
			runs++
			seq := scenario.body(c)
			log.WithField("scenario", scenario.name).Debugf("run %d: %v", runs, seq)
		}, nil)
		fmt.Printf("%s: %d runs\n", scenario.name, runs)
	}
}

type scenario struct {
	name string
	body func(c *branchtest.Case) []int
}

var scenarios = []scenario{
	{
		name: "single-branch",
		body: func(c *branchtest.Case) []int {
			v := c.StartCount("aba", 3)
			c.EndNamed("aba")
			return []int{v}
		},
	},
	{
		name: "two-sequential-branches",
		body: func(c *branchtest.Case) []int {
			a := c.StartCount("aba", 3)
			c.EndNamed("aba")
			b := c.StartCount("baba", 2)
			c.EndNamed("baba")
			return []int{a, b}
		},
	},
	{
		name: "varying-nested-branches",
		body: func(c *branchtest.Case) []int {
			a := c.StartCount("aba", 3)
			seq := []int{a}
			switch a {
			case 0:
				b := c.StartCount("baba", 2)
				c.EndNamed("baba")
				seq = append(seq, b)
			case 2:
				cc := c.StartCount("caba", 4)
				c.EndNamed("caba")
				seq = append(seq, cc)
			}
			c.EndNamed("aba")
			return seq
		},
	},
}
