// Command coolprop-go prints version information for the wrapper and the
// linked engine and runs one probe query to confirm the native library is
// reachable.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/coolprop/coolprop-go/pkg/coolprop"
)

func main() {
	log.Printf("coolprop-go version: %s", coolprop.WrapperVersion())

	engine, err := coolprop.EngineVersion()
	if err != nil {
		if errors.Is(err, coolprop.ErrNotBuilt) {
			fmt.Println("native engine not linked into this binary (built without cgo?)")
			return
		}
		log.Fatalf("querying engine version: %v", err)
	}
	log.Printf("engine version: %s", engine)

	rho, err := coolprop.PropsSI("Dmass", "T", 300, "P", 101325, "Water")
	if err != nil {
		log.Fatalf("probe query failed: %v", err)
	}
	fmt.Printf("water density at 300 K, 1 atm: %.2f kg/m^3\n", rho)
}
