// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/avdva/numconv"
	"github.com/avdva/numconv/calc"
	"github.com/avdva/numconv/internal/api"

	flag "github.com/spf13/pflag"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	var (
		radix       int
		fraction    bool
		precision   int
		serve       bool
		addr        string
		verbose     int
		showVersion bool
	)

	flag.IntVarP(&radix, "radix", "r", 10, "output radix, 2 to 255")
	flag.BoolVarP(&fraction, "fraction", "f", false, "render the value as a mixed fraction")
	flag.IntVarP(&precision, "precision", "p", envInt("NUMCONV_PRECISION", numconv.DefaultFractionPrecision),
		"largest denominator tried for fractions")
	flag.BoolVar(&serve, "serve", false, "serve the calculator over HTTP")
	flag.StringVar(&addr, "addr", getenv("NUMCONV_ADDR", "127.0.0.1:8080"), "listen address (host:port)")
	flag.CountVarP(&verbose, "verbose", "v", "increase verbosity; repeat for more detail")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: numconv [options] <expression>\n")
		fmt.Fprintf(os.Stderr, "       numconv --serve [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	level := slog.LevelInfo
	if verbose > 0 {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	c := calc.New(calc.LiteralEvaluator{}, calc.WithLogger(logger))

	if serve {
		srv := api.New(c, api.Config{Precision: precision, Verbose: verbose})
		slog.Info("listening", "addr", addr, "version", version)
		if err := httpListenAndServe(addr, srv.Router()); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	out, err := run(c, strings.Join(flag.Args(), " "), radix, fraction, precision)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(out.String())
}

func run(c *calc.Calculator, expr string, radix int, fraction bool, precision int) (calc.Output, error) {
	switch {
	case fraction:
		return c.Fraction(expr, radix, precision)
	case radix == 10:
		return c.Expression(expr), nil
	default:
		return c.ExpressionRadix(expr, radix)
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(getenv(key, strconv.Itoa(fallback)))
	if err != nil {
		slog.Warn("invalid integer in environment", "key", key, "error", err)
		return fallback
	}
	return value
}

// httpListenAndServe exists to facilitate testing.
var httpListenAndServe = func(addr string, h http.Handler) error {
	return http.ListenAndServe(addr, h)
}
