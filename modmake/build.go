package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xortoolVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	xortool := NewAppBuild("xortool", "cmd/xortool", xortoolVersion)
	xortool.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xortoolVersion).
			CgoEnabled(false)
	})
	xortool.Variant("windows", "amd64")
	xortool.Variant("linux", "amd64")
	xortool.Variant("linux", "arm64")
	xortool.Variant("darwin", "arm64")
	b.ImportApp(xortool)

	b.Execute()
}
