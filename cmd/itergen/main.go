// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/namsral/flag"
	"go.uber.org/zap/zapcore"

	"github.com/krnowak/itergen"
)

type config struct {
	kind     kind
	r        int
	n        int
	items    []string
	pools    [][]string
	repeat   int
	start    int64
	step     int64
	limit    int
	format   format
	logLevel zapcore.Level
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSetWithEnvPrefix("itergen", "ITERGEN", flag.ContinueOnError)
	kindStr := fs.String("kind", "", fmt.Sprintf("kind of sequence, one of %s", kindsStr()))
	r := fs.Int("r", -1, "length of each tuple; for permutations -1 means the number of items")
	n := fs.Int("n", 0, "number of indices to choose from for combinations and subsets")
	itemsStr := fs.String("items", "", "comma-separated items for permutations, cycle and repeat, like a,b,c")
	poolsStr := fs.String("pools", "", "semicolon-separated list of comma-separated pools for product, like 1,2;a,b")
	repeat := fs.Int("repeat", 1, "how many times the list of pools is repeated in product")
	start := fs.Int64("start", 0, "first value of count")
	step := fs.Int64("step", 1, "step of count")
	limit := fs.Int("limit", 0, "maximum number of values to print, 0 means all; required for count, cycle and repeat")
	formatStr := fs.String("format", string(formatText), "output format, text or yaml")
	logLevelStr := fs.String("log_level", "info", "log level, one of debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	k, err := strToKind(*kindStr)
	if err != nil {
		return config{}, fmt.Errorf("failed to get a kind: %w", err)
	}
	pools, err := strToPools(*poolsStr)
	if err != nil {
		return config{}, fmt.Errorf("failed to get pools: %w", err)
	}
	level, err := strToLevel(*logLevelStr)
	if err != nil {
		return config{}, err
	}
	if *limit < 0 {
		return config{}, fmt.Errorf("negative limit %d", *limit)
	}
	if k.infinite() && *limit == 0 {
		return config{}, fmt.Errorf("%s never ends, use -limit to bound it", k)
	}
	return config{
		kind:     k,
		r:        *r,
		n:        *n,
		items:    strToItems(*itemsStr),
		pools:    pools,
		repeat:   *repeat,
		start:    *start,
		step:     *step,
		limit:    *limit,
		format:   format(*formatStr),
		logLevel: level,
	}, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fail("%v", err)
	}
	logger = newJSONLogger(os.Stderr, cfg.logLevel)
	if err := run(cfg, os.Stdout); err != nil {
		fail("failed to generate %s: %v", cfg.kind, err)
	}
}

func run(cfg config, w io.Writer) error {
	tw, err := newTupleWriter(cfg.format, w)
	if err != nil {
		return err
	}
	var written int
	switch cfg.kind {
	case kindCombinations:
		g, err := itergen.NewCombGen(cfg.r, cfg.n)
		if err != nil {
			return err
		}
		written, err = writeTuples[int](tw, g, cfg.limit, intsToValues)
		if err != nil {
			return err
		}
	case kindCombinationsWithReplacement:
		g, err := itergen.NewCombRepGen(cfg.r, cfg.n)
		if err != nil {
			return err
		}
		written, err = writeTuples[int](tw, g, cfg.limit, intsToValues)
		if err != nil {
			return err
		}
	case kindSubsets:
		g, err := itergen.NewSubsetGen(cfg.n)
		if err != nil {
			return err
		}
		written, err = writeTuples[int](tw, g, cfg.limit, intsToValues)
		if err != nil {
			return err
		}
	case kindPermutations:
		domain := itemsToValues(cfg.items)
		var g *itergen.PermGen[interface{}]
		if cfg.r == -1 {
			g = itergen.NewFullPermGen(domain)
		} else {
			g, err = itergen.NewPermGen(domain, cfg.r)
			if err != nil {
				return err
			}
		}
		written, err = writeTuples[interface{}](tw, g, cfg.limit, sameValues)
		if err != nil {
			return err
		}
	case kindProduct:
		pools := make([][]interface{}, 0, len(cfg.pools))
		for _, pool := range cfg.pools {
			pools = append(pools, itemsToValues(pool))
		}
		g, err := itergen.NewProdGen(cfg.repeat, pools...)
		if err != nil {
			return err
		}
		written, err = writeTuples[interface{}](tw, g, cfg.limit, sameValues)
		if err != nil {
			return err
		}
	case kindCount:
		c := itergen.NewCounter(cfg.start, cfg.step)
		written, err = writeScalars(tw, c.Next, cfg.limit)
		if err != nil {
			return err
		}
	case kindCycle:
		c, err := itergen.NewCycle(itemsToValues(cfg.items))
		if err != nil {
			return err
		}
		written, err = writeScalars(tw, c.Next, cfg.limit)
		if err != nil {
			return err
		}
	case kindRepeat:
		if len(cfg.items) != 1 {
			return fmt.Errorf("repeat takes exactly one item, got %d", len(cfg.items))
		}
		rp := itergen.NewRepeater(itemToValue(cfg.items[0]))
		written, err = writeScalars(tw, rp.Next, cfg.limit)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unhandled kind %s", cfg.kind)
	}
	debug("wrote %d values of %s", written, cfg.kind)
	return nil
}

func writeTuples[E any](tw tupleWriter, g itergen.Generator[E], limit int, conv func([]E) []interface{}) (int, error) {
	written := 0
	for g.Next() {
		if limit > 0 && written == limit {
			warn("output truncated after %d values", limit)
			break
		}
		if err := tw.WriteTuple(conv(g.Get())); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeScalars[E any](tw tupleWriter, next func() E, limit int) (int, error) {
	for written := 0; written < limit; written++ {
		if err := tw.WriteScalar(next()); err != nil {
			return written, err
		}
	}
	return limit, nil
}

func intsToValues(idxs []int) []interface{} {
	values := make([]interface{}, 0, len(idxs))
	for _, idx := range idxs {
		values = append(values, idx)
	}
	return values
}

func sameValues(values []interface{}) []interface{} {
	return values
}
