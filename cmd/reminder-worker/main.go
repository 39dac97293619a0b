package main

import (
	"os"

	"github.com/PickleRicc/deep-work-sub001/reminderworker"
)

func main() {
	if err := reminderworker.Run(); err != nil {
		os.Exit(1)
	}
}
