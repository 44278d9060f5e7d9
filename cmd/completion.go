package cmd

import (
	"flag"

	"github.com/etnz/exposure/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of flags with known values, by flag name.
var flagPredictors = map[string]complete.Predictor{
	"file":   predict.Files("*"),
	"config": predict.Files("*.yaml"),
	"o":      predict.Files("*.csv"),
	"png":    predict.Files("*.png"),
	"html":   predict.Files("*.html"),
	"log":    predict.Set{"off", "dev", "prod"},
	"kind":   predict.Set{"current", "future"},
	"period": predict.Set{"daily", "weekly", "monthly", "quarterly"},
}

// Completion returns the shell completion of every command registered into c.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		root.Sub[sub.Name()] = &complete.Command{Flags: predictFlags(fs)}
	})
	if topic, ok := root.Sub["topic"]; ok {
		topics, _ := docs.GetAllTopics()
		topic.Args = predict.Set(append(topics, docs.Readme))
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
