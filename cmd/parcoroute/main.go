// Copyright 2021 Jonathan Amsterdam.

// Command parcoroute serves the example router over HTTP and, with
// --print-route, demonstrates the printer direction from the command line by
// re-printing a route value back into a Request and dumping it as an HTTP
// request line.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/elfenlaid/swift-parsing/example"
	"github.com/elfenlaid/swift-parsing/httpadapter"
)

type opts struct {
	Addr       string
	PrintRoute string
	Verbose    bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("parcoroute", pflag.ExitOnError)
	flags.StringVar(&op.Addr, "addr", ":8080", "Address to listen on.")
	flags.StringVar(&op.PrintRoute, "print-route", "", "Instead of serving, print the Request form of one of: home, episode, episodes, search, sign-up.")
	flags.BoolVar(&op.Verbose, "verbose", false, "Log at debug level.")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if op.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if op.PrintRoute != "" {
		if err := printRoute(op.PrintRoute); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	router := example.Router()
	handler := func(w http.ResponseWriter, r *http.Request) {
		req, err := httpadapter.FromHTTP(r)
		if err != nil {
			slog.Error("decoding request", "error", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		route, err := router.Parse(&req)
		if err != nil {
			slog.Debug("no route matched", "path", r.URL.Path, "error", err)
			http.NotFound(w, r)
			return
		}

		slog.Info("matched route", "method", r.Method, "path", r.URL.Path, "route", fmt.Sprintf("%#v", route))
		fmt.Fprintf(w, "%#v\n", route)
	}

	slog.Info("listening", "addr", op.Addr)
	if err := http.ListenAndServe(op.Addr, http.HandlerFunc(handler)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// printRoute exercises the printer side of the router: it builds a sample
// route value by name, prints it to a Request, then renders that Request as
// an *http.Request for inspection.
func printRoute(name string) error {
	route, err := sampleRoute(name)
	if err != nil {
		return err
	}

	printed, err := example.Router().Print(route)
	if err != nil {
		return fmt.Errorf("printing route: %w", err)
	}

	httpReq, err := httpadapter.ToHTTP(printed)
	if err != nil {
		return fmt.Errorf("rendering request: %w", err)
	}

	method := "GET"
	if printed.Method != nil {
		method = *printed.Method
	}
	fmt.Printf("%s %s\n", method, httpReq.URL.RequestURI())
	if len(printed.Body) > 0 {
		fmt.Println(string(printed.Body))
	}
	return nil
}

func sampleRoute(name string) (example.Route, error) {
	switch name {
	case "home":
		return example.Home{}, nil
	case "episode":
		return example.Episode{ID: 1}, nil
	case "episodes":
		limit := int64(10)
		return example.Episodes{Limit: &limit}, nil
	case "search":
		return example.Search{Query: "point free"}, nil
	case "sign-up":
		return example.SignUp{User: example.User{Email: "a@b.com", Password: "secret"}}, nil
	default:
		return nil, errors.New("unknown route name: " + name + " (want one of home, episode, episodes, search, sign-up)")
	}
}
