// Command navodds computes the odds that the vehicle reaches its arrival
// planet before the empire's countdown runs out.
//
//	navodds odds millennium-falcon.json empire.json
//	navodds batch millennium-falcon.json empire-*.json --parallel 4
//	navodds routes millennium-falcon.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
