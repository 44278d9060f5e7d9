package cmd

import (
	"flag"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	global := flag.NewFlagSet("expo", flag.ContinueOnError)
	global.String("file", "", "")
	global.Bool("trace", false, "")
	commander := subcommands.NewCommander(global, "expo")
	Register(commander)

	root := Completion(commander, global)
	for _, name := range []string{"exposure", "heatmap", "dashboard", "serve", "topic"} {
		if _, ok := root.Sub[name]; !ok {
			t.Errorf("Completion() lacks the %q command", name)
		}
	}
	if _, ok := root.Flags["file"]; !ok {
		t.Error("Completion() lacks the global -file flag")
	}

	kind := root.Sub["heatmap"].Flags["kind"]
	if kind == nil {
		t.Fatal("heatmap -kind has no predictor")
	}
	if got := kind.Predict(""); !slices.Contains(got, "future") {
		t.Errorf("heatmap -kind predicts %v, want future among them", got)
	}
	if got := root.Sub["topic"].Args.Predict(""); !slices.Contains(got, "dates") {
		t.Errorf("topic predicts %v, want dates among them", got)
	}
}
