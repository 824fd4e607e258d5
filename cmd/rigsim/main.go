// Command rigsim runs camera rig presets headlessly and prints the transform
// produced on every frame.
//
//	rigsim run --preset third_person.toml --frames 120 --velocity 1,0,0
//	rigsim validate --watch third_person.toml
//	rigsim example > third_person.toml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
