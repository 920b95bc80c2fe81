//go:build js && wasm

// Command visitors-wasm is the browser build of the visitor counter. It waits
// for the document, posts one increment and writes the result into #visitors.
//
//	GOOS=js GOARCH=wasm go build -o web/visitors.wasm ./cmd/visitors-wasm
//
// The endpoint comes from the element's data-endpoint attribute, falling back
// to defaultEndpoint, which can be set with -ldflags "-X main.defaultEndpoint=URL".
package main

import (
	"context"

	"github.com/cloudresume/visitors/config"
	"github.com/cloudresume/visitors/counter"
	"github.com/cloudresume/visitors/display"
	"github.com/cloudresume/visitors/dom"
	"github.com/cloudresume/visitors/page"
)

const displayID = "visitors"

var defaultEndpoint = config.ProductionEndpoint

func main() {
	done := make(chan struct{})

	dom.OnReady(func() {
		defer close(done)

		el := dom.Element{ID: displayID}
		endpoint := el.Endpoint()
		if endpoint == "" {
			endpoint = defaultEndpoint
		}

		endpoint, err := config.ResolveEndpoint(config.EnvProduction, endpoint)
		if err != nil {
			display.Show(el, 0, err, dom.Console{})
			return
		}

		page.New(counter.New(endpoint), el, dom.Console{}).Ready(context.Background())
	})

	<-done
}
