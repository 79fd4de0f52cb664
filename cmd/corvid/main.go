package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/console"
	"github.com/corvidchess/corvid/pkg/engine/uci"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"os"
	"time"
)

var (
	noise = flag.Int("noise", 0, "Evaluation noise in centipawns (zero if deterministic), for engine-vs-itself testing")
	depth = flag.Uint("depth", 6, "Default search depth limit, if a search sets none (zero means no limit)")
	hash  = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var base eval.Evaluator = eval.PieceSquare{}
	if *noise > 0 {
		base = eval.NewRandom(base, *noise, time.Now().UnixNano())
	}

	s := search.PVS{
		Eval: search.Quiescence{
			Eval: base,
		},
	}
	e := engine.New(ctx, "corvid", "corvidchess", s, engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
