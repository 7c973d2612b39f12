//go:build js && wasm

// Command waypoint-web is the browser entry point. Build it with
//
//	GOOS=js GOARCH=wasm go build -o web/waypoint.wasm ./cmd/waypoint-web
package main

import (
	"context"
	"syscall/js"

	"github.com/trailmark/waypoint/pkg/waypoint"
	"github.com/trailmark/waypoint/pkg/waypoint/dom"
	"github.com/trailmark/waypoint/pkg/waypoint/views"
)

func main() {
	ctx := context.Background()
	window := js.Global()
	doc := window.Get("document")

	if err := waypoint.Init(waypoint.Options{
		ConfigTOML: waypoint.DefaultConfigTOML,
		Languages:  browserLanguages(window),
	}); err != nil {
		fatal(err)
	}
	logger := waypoint.GetLogger()

	cfg, err := waypoint.GetConfig()
	if err != nil {
		fatal(err)
	}
	msgs, err := waypoint.GetMessages()
	if err != nil {
		fatal(err)
	}

	regionEl, err := dom.Element(doc, cfg.Host.RegionID)
	if err != nil {
		fatal(waypoint.NewInfrastructureError("bind_host", err))
	}
	indicatorEl, err := dom.Element(doc, cfg.Host.IndicatorID)
	if err != nil {
		fatal(waypoint.NewInfrastructureError("bind_host", err))
	}

	region := dom.NewRegion(regionEl)
	r, err := waypoint.NewRouter(views.Routes(views.Deps{
		Source:   views.NewMemorySource(views.DemoProjects()...),
		Messages: msgs,
		Region:   region,
	}), waypoint.Host{
		Region:      region,
		Indicator:   dom.NewIndicator(indicatorEl),
		History:     dom.NewHistory(window),
		Highlighter: dom.NewHighlighter(doc, cfg.Host.RouteAttr, cfg.Host.ActiveClass),
	})
	if err != nil {
		fatal(err)
	}

	release := dom.Bind(ctx, r, doc, window, cfg.Host.RouteAttr)
	defer release()

	unload := js.FuncOf(func(js.Value, []js.Value) any {
		go r.Close(ctx)
		return nil
	})
	defer unload.Release()
	window.Call("addEventListener", "pagehide", unload)

	logger.Info("starting", "location", window.Get("location").Get("pathname").String())
	go r.Start(ctx)

	// The page owns the lifetime from here on.
	select {}
}

func browserLanguages(window js.Value) []string {
	nav := window.Get("navigator")
	list := nav.Get("languages")
	var out []string
	if list.Type() == js.TypeObject {
		for i := 0; i < list.Length(); i++ {
			out = append(out, list.Index(i).String())
		}
	}
	if lang := nav.Get("language"); lang.Type() == js.TypeString {
		out = append(out, lang.String())
	}
	return out
}

func fatal(err error) {
	waypoint.GetLogger().Error("startup failed", "error", err)
	js.Global().Get("console").Call("error", err.Error())
	select {}
}
