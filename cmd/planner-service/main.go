package main

import (
	"os"

	"github.com/PickleRicc/deep-work-sub001/plannerservice"
)

func main() {
	if err := plannerservice.Run(); err != nil {
		os.Exit(1)
	}
}
