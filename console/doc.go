// Package console routes xconsole records to a host console with level
// filtering and per-level styling.
//
// Add the following to the initialization code of the program:
//
//	console.Init(console.NewConfig(xconsole.LevelDebug))
//
// Records are then emitted through the xconsole facade:
//
//	xconsole.Infof("adding %d+%d", a, b)
//	xconsole.For("app::db").Warn("slow query")
//
// Under js/wasm the default console is the browser's developer console and
// records are styled with CSS. Elsewhere the default console is a terminal
// on stderr. Any Console implementation can be used through InitWith.
package console
