package router_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

func static(content router.Content) router.Factory {
	return func(router.Match) (router.View, error) {
		return router.ViewFunc(func(context.Context) (router.Content, error) {
			return content, nil
		}), nil
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Example demonstrates route registration, parameters and the not-found fallback.
func Example() {
	ctx := context.Background()

	table, err := router.NewTable(map[string]router.Factory{
		"/": static("<h1>Home</h1>"),
		"/project/:id": func(m router.Match) (router.View, error) {
			return router.ViewFunc(func(context.Context) (router.Content, error) {
				return router.Content("<h1>Project " + m.Params.Get("id") + "</h1>"), nil
			}), nil
		},
		"/404": static("<h1>Not found</h1>"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	region := &router.MemoryRegion{}
	history := router.NewMemoryHistory("/")
	r, err := router.New(table, router.Options{Region: region, History: history, Logger: quietLogger()})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(r.Start(ctx), region.Content())
	fmt.Println(r.Navigate(ctx, "/project/rome"), region.Content())
	fmt.Println(r.Navigate(ctx, "/nowhere"), region.Content())
	fmt.Println(history.Entries())

	// Output:
	// rendered <h1>Home</h1>
	// rendered <h1>Project rome</h1>
	// rendered <h1>Not found</h1>
	// [/ /project/rome /nowhere]
}

// tickerView stands in for a view holding a live subscription.
type tickerView struct {
	name string
}

func (v *tickerView) Render(context.Context) (router.Content, error) {
	fmt.Println("render", v.name)
	return router.Content(v.name), nil
}

func (v *tickerView) Initialize(context.Context) error {
	fmt.Println("subscribe", v.name)
	return nil
}

func (v *tickerView) Cleanup(context.Context) error {
	fmt.Println("unsubscribe", v.name)
	return nil
}

// Example_lifecycle shows the order of lifecycle calls across navigations.
func Example_lifecycle() {
	ctx := context.Background()
	ticker := func(name string) router.Factory {
		return func(router.Match) (router.View, error) {
			return &tickerView{name: name}, nil
		}
	}

	table, _ := router.NewTable(map[string]router.Factory{
		"/":     ticker("home"),
		"/walk": ticker("walk"),
		"/404":  static("not found"),
	})
	r, _ := router.New(table, router.Options{
		Region:  &router.MemoryRegion{},
		History: router.NewMemoryHistory("/"),
		Logger:  quietLogger(),
	})

	r.Start(ctx)
	r.Navigate(ctx, "/walk")
	_ = r.Close(ctx)

	// Output:
	// render home
	// subscribe home
	// unsubscribe home
	// render walk
	// subscribe walk
	// unsubscribe walk
}
