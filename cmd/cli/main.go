// Command cli evaluates a single query from the command line and
// prints the result. Useful for trying the engine without a server:
//
//	cli "5 km to miles"
//	cli "100 c to f"
//	cli "(2+2)*2"
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/querycalc/querycalc/infra/initializer"
	"github.com/querycalc/querycalc/pkg/config"
	"github.com/querycalc/querycalc/pkg/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <query>")
		fmt.Println(`Examples: cli "5 km to miles", cli "100 usd to eur", cli "2^10"`)
		os.Exit(2)
	}
	query := strings.Join(os.Args[1:], " ")

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("failed to load configuration: %v", err)
		os.Exit(1)
	}

	deps, err := initializer.Initialize(cfg)
	if err != nil {
		color.Red("failed to initialize: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := deps.Calc.Query(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoMatch):
			color.Yellow("no interpretation for %q", query)
			os.Exit(1)
		case errors.Is(err, domain.ErrRateUnavailable):
			color.Red("exchange rates unavailable: %v", err)
			os.Exit(1)
		default:
			color.Red("error: %v", err)
			os.Exit(1)
		}
	}

	fmt.Printf("%s %s = %s %s\n",
		color.CyanString(result.Input),
		result.InputLabel,
		color.GreenString(result.Result),
		result.ResultLabel,
	)
}
