// Copyright 2021 Jonathan Amsterdam.

// Package httpadapter implements the canonical mapping between a concrete
// *http.Request and the core request.Request value, fixed by the routing
// core's external interface contract: split the path on "/" dropping empty
// leading/trailing segments, decode the query preserving order, store
// headers as-received (compared case-insensitively elsewhere), uppercase
// the method, and carry the body unmodified.
package httpadapter

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/elfenlaid/swift-parsing/request"
)

// FromHTTP converts req into a request.Request per the core's canonical
// mapping. It reads and replaces req.Body so the request remains usable by
// the caller afterward.
func FromHTTP(req *http.Request) (request.Request, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return request.Request{}, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var method *string
	if req.Method != "" {
		m := strings.ToUpper(req.Method)
		method = &m
	}
	return request.Request{
		Method:  method,
		Path:    splitPath(req.URL.Path),
		Query:   decodeQuery(req.URL.RawQuery),
		Headers: headersOf(req.Header),
		Body:    body,
	}, nil
}

// ToHTTP builds a *http.Request (suitable for http.Client.Do, or for
// inspection) from r's printed form. A nil Method is sent as GET, per the
// core's "absence means GET by default" rule.
func ToHTTP(r request.Request) (*http.Request, error) {
	method := "GET"
	if r.Method != nil {
		method = *r.Method
	}
	u := &url.URL{Path: "/" + strings.Join(r.Path, "/")}
	if len(r.Query) > 0 {
		u.RawQuery = encodeQuery(r.Query)
	}
	req, err := http.NewRequest(method, u.String(), bytes.NewReader(r.Body))
	if err != nil {
		return nil, err
	}
	for _, h := range r.Headers {
		req.Header.Add(h.Name, h.Value)
	}
	return req, nil
}

// splitPath splits p on "/", discarding empty leading and trailing
// segments. "/episodes/1" -> ["episodes", "1"]; "/" -> [].
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// decodeQuery decodes a raw query string into ordered name/value pairs,
// URL-decoding both; a missing value decodes to the empty string. Unlike
// net/url.ParseQuery, which collapses into an unordered map, this preserves
// the order pairs appeared in, since the printer side needs that order.
func decodeQuery(raw string) []request.KV {
	if raw == "" {
		return nil
	}
	var kvs []request.KV
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		name, value := part, ""
		if i := strings.IndexByte(part, '='); i >= 0 {
			name, value = part[:i], part[i+1:]
		}
		dn, err := url.QueryUnescape(name)
		if err != nil {
			dn = name
		}
		dv, err := url.QueryUnescape(value)
		if err != nil {
			dv = value
		}
		kvs = append(kvs, request.KV{Name: dn, Value: dv})
	}
	return kvs
}

func encodeQuery(kvs []request.KV) string {
	var b strings.Builder
	for i, kv := range kvs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// headersOf's pair order is only as stable as http.Header's own map
// iteration, since net/http has already lost wire order by the time a
// handler sees req.Header.
func headersOf(h http.Header) []request.KV {
	if len(h) == 0 {
		return nil
	}
	var kvs []request.KV
	for name, values := range h {
		for _, v := range values {
			kvs = append(kvs, request.KV{Name: name, Value: v})
		}
	}
	return kvs
}
