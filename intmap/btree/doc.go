// Package btree implements an ordered map from int keys to int values backed
// by a B-tree. Elements live in both leaf and internal nodes; leaves and
// internal nodes carry separate capacities so that wide leaves can be combined
// with narrow, cache friendly internal levels.
//
// A Tree is not safe for concurrent mutation.
package btree
