package main

import (
	"log"
	"os"

	"github.com/viant/intmap/intmap"
	"github.com/viant/intmap/intmap/registry"
)

// backendEnv selects the storage backend for every map created by the library.
const backendEnv = "INTMAP_BACKEND"

var maps = newRegistry(os.Getenv(backendEnv))

func newRegistry(backend string) *registry.Registry {
	kind, err := intmap.ParseKind(backend)
	if err != nil {
		log.Printf("libintmap: %v, using %v", err, intmap.KindBTree)
		kind = intmap.KindBTree
	}
	return registry.New(intmap.WithKind(kind))
}

func createMap(keys []int) int64 {
	return int64(maps.Create(keys))
}

func destroyMap(handle int64) {
	if err := maps.Destroy(registry.Handle(handle)); err != nil {
		log.Printf("libintmap: destroy_map: %v", err)
	}
}

func mapLookups(handle int64, keys []int) {
	if err := maps.Lookup(registry.Handle(handle), keys); err != nil {
		log.Printf("libintmap: map_lookups: %v", err)
	}
}
