package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hearth-web/hearth"
	"github.com/hearth-web/hearth/router"
	"github.com/hearth-web/hearth/settings"
)

func main() {
	var (
		addr     = flag.String("addr", "127.0.0.1:7879", "address to listen on")
		workers  = flag.Int("workers", 0, "worker pool size (0 means default)")
		pages    = flag.String("pages", "./pages", "directory to build the route table from")
		manifest = flag.String("manifest", "", "JSON route manifest; takes precedence over -pages")
		notFound = flag.String("not-found", "", "page served with 404 responses (default <pages>/not_found.html)")
	)
	flag.Parse()

	routes, err := buildRoutes(*manifest, *pages)
	if err != nil {
		log.Fatalf("building routes: %s", err)
	}

	if len(*notFound) == 0 {
		*notFound = filepath.Join(*pages, "not_found.html")
	}

	s := settings.Settings{
		Pool: settings.Pool{
			Workers: *workers,
		},
		Pages: settings.Pages{
			NotFound: *notFound,
		},
	}

	app := hearth.New(*addr).
		Tune(s).
		NotifyOnStart(func() {
			log.Printf("serving %d routes on %s", routes.Len(), *addr)
		})

	if err = app.Serve(routes); err != nil {
		log.Fatal(err)
	}
}

func buildRoutes(manifest, pages string) (*router.Table, error) {
	if len(manifest) > 0 {
		return router.FromManifest(manifest)
	}

	return router.FromDir(pages)
}
