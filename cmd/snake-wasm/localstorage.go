//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
)

// localStorage is a scores.KV over window.localStorage.
type localStorage struct {
	store js.Value
}

func newLocalStorage() (*localStorage, error) {
	store := js.Global().Get("localStorage")
	if store.IsUndefined() || store.IsNull() {
		return nil, fmt.Errorf("localStorage not available")
	}
	return &localStorage{store: store}, nil
}

func (l *localStorage) Get(key string) (value string, ok bool, err error) {
	defer recoverJS(&err)
	v := l.store.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (l *localStorage) Set(key, value string) (err error) {
	defer recoverJS(&err)
	l.store.Call("setItem", key, value)
	return nil
}

// recoverJS turns a thrown JavaScript exception (quota, private mode) into
// an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = fmt.Errorf("localStorage: %w", jsErr)
		return
	}
	panic(r)
}
