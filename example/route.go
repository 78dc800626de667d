// Copyright 2021 Jonathan Amsterdam.

// Package example wires the core request-slice parsers into the
// home/episodes/episode/search/signUp router used throughout this module's
// end-to-end tests: Method.skip(path...).take(query...), printed by
// concatenation.
package example

import (
	"encoding/json"

	"github.com/elfenlaid/swift-parsing"
	"github.com/elfenlaid/swift-parsing/request"
)

// Route is the sum type describing a matched request's intent. Exactly one
// of the isRoute-satisfying concrete types below is ever produced by
// Router's Parse.
type Route interface {
	isRoute()
}

// Home is GET /.
type Home struct{}

func (Home) isRoute() {}

// Episode is GET /episodes/{id}.
type Episode struct {
	ID int64
}

func (Episode) isRoute() {}

// Episodes is GET /episodes, with optional pagination.
type Episodes struct {
	Limit  *int64
	Offset *int64
}

func (Episodes) isRoute() {}

// Search is GET /search?q=....
type Search struct {
	Query string
}

func (Search) isRoute() {}

// User is the JSON body of a sign-up request.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp is POST /sign-up with a JSON user body.
type SignUp struct {
	User User
}

func (SignUp) isRoute() {}

// jsonBody is a Conversion[ByteInput, User]: json.Marshal and json.Unmarshal
// are mutual inverses on the image of valid User values. Every ByteInput in
// this conversion's domain decodes successfully, so Unapply always reports
// ok.
var jsonBody = parsing.Conversion[parsing.ByteInput, User]{
	Apply: func(b parsing.ByteInput) User {
		var u User
		_ = json.Unmarshal(b.Bytes(), &u)
		return u
	},
	Unapply: func(u User) (parsing.ByteInput, bool) {
		b, err := json.Marshal(u)
		if err != nil {
			return parsing.ByteInput{}, false
		}
		return parsing.NewByteInput(b), true
	},
}

// routeConv builds the Conversion[O, Route] for one Route variant. unapply
// performs the comma-ok type assertion back from the shared Route interface
// to this variant's O, reporting ok=false for every other variant instead
// of panicking — Router tries each variant's Map speculatively via OrElse,
// so a printed Route that belongs to a different branch must fail cleanly.
func routeConv[O any](apply func(O) Route, unapply func(Route) (O, bool)) parsing.Conversion[O, Route] {
	return parsing.Conversion[O, Route]{Apply: apply, Unapply: unapply}
}

func home() request.Parser[Route] {
	p := parsing.Skip(request.Method("GET"), request.PathEnd)
	return parsing.Map(p, routeConv(
		func(struct{}) Route { return Home{} },
		func(r Route) (struct{}, bool) {
			_, ok := r.(Home)
			return struct{}{}, ok
		},
	))
}

func episode() request.Parser[Route] {
	// PathComponent("episodes") has unit output, so SkipFirst keeps only
	// the id the second PathComponent parses.
	path := parsing.SkipFirst(
		request.PathComponent(parsing.StartsWith[parsing.TextInput]("episodes")),
		request.PathComponent(parsing.Int[parsing.TextInput]()),
	)
	withMethod := parsing.SkipFirst(request.Method("GET"), path)
	full := parsing.Skip(withMethod, request.PathEnd)
	return parsing.Map(full, routeConv(
		func(id int64) Route { return Episode{ID: id} },
		func(r Route) (int64, bool) {
			e, ok := r.(Episode)
			return e.ID, ok
		},
	))
}

func episodes() request.Parser[Route] {
	path := parsing.Skip(
		request.PathComponent(parsing.StartsWith[parsing.TextInput]("episodes")),
		request.PathEnd,
	)
	withMethod := parsing.SkipFirst(request.Method("GET"), path)
	query := parsing.Take2(
		parsing.Optional(request.QueryItem("limit", parsing.Int[parsing.TextInput]())),
		parsing.Optional(request.QueryItem("offset", parsing.Int[parsing.TextInput]())),
	)
	full := parsing.SkipFirst(withMethod, query)
	return parsing.Map(full, routeConv(
		func(v parsing.Pair[*int64, *int64]) Route {
			return Episodes{Limit: v.First, Offset: v.Second}
		},
		func(r Route) (parsing.Pair[*int64, *int64], bool) {
			e, ok := r.(Episodes)
			return parsing.Pair[*int64, *int64]{First: e.Limit, Second: e.Offset}, ok
		},
	))
}

func search() request.Parser[Route] {
	path := parsing.Skip(
		request.PathComponent(parsing.StartsWith[parsing.TextInput]("search")),
		request.PathEnd,
	)
	withMethod := parsing.SkipFirst(request.Method("GET"), path)
	full := parsing.SkipFirst(withMethod, request.QueryItem("q", parsing.Rest[parsing.TextInput]()))
	return parsing.Map(full, routeConv(
		func(q parsing.TextInput) Route { return Search{Query: q.Raw()} },
		func(r Route) (parsing.TextInput, bool) {
			s, ok := r.(Search)
			return parsing.NewTextInput(s.Query), ok
		},
	))
}

func signUp() request.Parser[Route] {
	path := parsing.Skip(
		request.PathComponent(parsing.StartsWith[parsing.TextInput]("sign-up")),
		request.PathEnd,
	)
	withMethod := parsing.SkipFirst(request.Method("POST"), path)
	full := parsing.SkipFirst(withMethod, request.Body(parsing.Map(parsing.Rest[parsing.ByteInput](), jsonBody)))
	return parsing.Map(full, routeConv(
		func(u User) Route { return SignUp{User: u} },
		func(r Route) (User, bool) {
			s, ok := r.(SignUp)
			return s.User, ok
		},
	))
}

// Router is the home ∪ episodes ∪ episode ∪ search ∪ signUp router used by
// this module's end-to-end tests and by cmd/parcoroute.
func Router() request.Parser[Route] {
	return parsing.OrElse(
		home(),
		parsing.OrElse(
			episode(),
			parsing.OrElse(
				episodes(),
				parsing.OrElse(search(), signUp()),
			),
		),
	)
}
