package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"housie90.app/gen"
)

func main() {
	cards := flag.Int("cards", 1, "The number of cards (strips of 6 tickets) to generate")
	seed := flag.Uint64("seed", 0, "Seed for the random source; 0 seeds from the clock")
	asJSON := flag.Bool("json", false, "Emit the wire JSON instead of text grids")
	debug := flag.Bool("debug", false, "Print ticket internals alongside each grid")

	flag.Parse()

	s1, s2 := *seed, *seed
	if *seed == 0 {
		s1 = uint64(time.Now().UnixNano())
		s2 = uint64(time.Now().Nanosecond())
	}

	g := gen.CreateGenerator(rand.New(rand.NewPCG(s1, s2)))
	tickets := g.GenerateCards(*cards)

	if *asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(map[string][]gen.Ticket{"cards": tickets}); err != nil {
			fmt.Println("Error encoding tickets:", err)
			os.Exit(1)
		}
		return
	}

	for i, ticket := range tickets {
		if i%gen.StripSize == 0 {
			fmt.Printf("============ card %d ============\n", i/gen.StripSize+1)
		}
		fmt.Println(ticket.Repr())
		if *debug {
			fmt.Println(ticket.DebugString())
		}
		fmt.Println("--------------------------------")
	}
	fmt.Println("Done")
}
