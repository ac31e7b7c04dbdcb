package web

import "embed"

// FS holds the static assets served under /static, including the global
// stylesheet referenced by the root layout.
//
//go:embed static/*
var FS embed.FS
