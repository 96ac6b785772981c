//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonosphere/app"
	"github.com/simukka/sonosphere/common"
)

func main() {
	common.EnableDebug = false

	a, err := app.NewApp()
	if err != nil {
		common.DebugError(err.Error())
		panic(err)
	}

	// Expose a small API for the console
	js.Global.Set("Sonosphere", map[string]interface{}{
		"debug": func(on bool) {
			common.EnableDebug = on
		},
		"set": func(id, value string) string {
			if err := a.Panel.Set(id, value); err != nil {
				return err.Error()
			}
			return ""
		},
		"toggleStats": func() {
			a.Stats.Toggle()
		},
	})

	a.Start()
	select {}
}
