// Package models provides the shared data model of create-stack.
//
// A [Session] carries the answers collected by the interactive wizard and
// is handed to the scaffolding components. It lives only for the duration
// of one invocation and is never persisted.
//
// # Scaffold Modes
//
// A session selects exactly one of two branches:
//   - Frontend: generate a React project and add libraries to it
//   - Boilerplate: clone a complete project from a remote repository
//
// Use [ScaffoldMode] and its constants:
//
//	mode := models.ModeFrontend
//	if mode.IsValid() {
//	    fmt.Println("Valid mode:", mode)
//	}
//
// # Selections
//
// The selection carried by a session depends on its mode: a single
// repository URL for [ModeBoilerplate], or a set of library names for
// [ModeFrontend]. Both are drawn from the compiled-in catalogs.
package models
