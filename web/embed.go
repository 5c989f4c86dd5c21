// Package web holds the browser page served by the asset server. The wasm
// binary, wasm_exec.js and icons are build outputs written next to these
// files; the server overlays the directory on disk over this embedded copy.
package web

import "embed"

//go:embed *.html *.css *.json *.js
var FS embed.FS
