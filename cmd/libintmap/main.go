package main

/*
#include <stdint.h>

typedef intptr_t IntMap;
*/
import "C"

import "unsafe"

//export create_map
func create_map(count C.intptr_t, keys *C.intptr_t) C.IntMap {
	return C.IntMap(createMap(keySlice(count, keys)))
}

//export destroy_map
func destroy_map(handle C.IntMap) {
	destroyMap(int64(handle))
}

//export map_lookups
func map_lookups(handle C.IntMap, count C.intptr_t, keys *C.intptr_t) {
	mapLookups(int64(handle), keySlice(count, keys))
}

// keySlice views the caller's buffer without copying; intptr_t and int share
// a width on every platform Go supports.
func keySlice(count C.intptr_t, keys *C.intptr_t) []int {
	if count <= 0 || keys == nil {
		return nil
	}
	return unsafe.Slice((*int)(unsafe.Pointer(keys)), int(count))
}

func main() {}
