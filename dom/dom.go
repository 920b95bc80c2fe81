//go:build js && wasm

package dom

import (
	"fmt"
	"strings"
	"syscall/js"
)

type Element struct {
	ID string
}

func (e Element) SetText(text string) {
	el := js.Global().Get("document").Call("getElementById", e.ID)
	if el.IsNull() || el.IsUndefined() {
		Console{}.Error("display element not found", "id", e.ID)
		return
	}
	el.Set("textContent", text)
}

// Endpoint returns the element's data-endpoint attribute resolved against the
// document URL, or "" when unset.
func (e Element) Endpoint() string {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", e.ID)
	if el.IsNull() || el.IsUndefined() {
		return ""
	}
	v := el.Call("getAttribute", "data-endpoint")
	if v.IsNull() || v.String() == "" {
		return ""
	}
	return js.Global().Get("URL").New(v.String(), doc.Get("baseURI")).Get("href").String()
}

type Console struct{}

func (Console) Error(msg string, args ...interface{}) error {
	js.Global().Get("console").Call("error", msg, joinPairs(args))
	return nil
}

func joinPairs(args []interface{}) string {
	parts := make([]string, 0, len(args)/2+1)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			parts = append(parts, fmt.Sprintf("%v=%v", args[i], args[i+1]))
		} else {
			parts = append(parts, fmt.Sprint(args[i]))
		}
	}
	return strings.Join(parts, " ")
}

// OnReady calls fn once the document has been parsed. fn runs on its own
// goroutine since it may block on the network.
func OnReady(fn func()) {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		go fn()
		return
	}

	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb.Release()
		go fn()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", cb, map[string]interface{}{"once": true})
}
